package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"visitordesk/internal/delivery/http/helpers"
	"visitordesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKioskController_Search(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		fakeErr        error
		fakeResult     []*domain.Visitor
		wantStatus     int
		wantBodySubstr string
		checkCall      func(t *testing.T, fake *fakeVisitorService)
	}{
		{
			name:       "check-in search",
			target:     "/kiosk/visitors?q=ann&status=booked",
			fakeResult: []*domain.Visitor{{ID: "v-1", Name: "Anna Berg", Status: domain.StatusBooked}},
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeVisitorService) {
				assert.Equal(t, "ann", fake.lastSearchQuery)
				assert.Equal(t, domain.StatusBooked, fake.lastSearchStatus)
			},
		},
		{
			name:       "check-out search",
			target:     "/kiosk/visitors?q=bo&status=checked-in",
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeVisitorService) {
				assert.Equal(t, domain.StatusCheckedIn, fake.lastSearchStatus)
			},
		},
		{
			name:       "empty query allowed",
			target:     "/kiosk/visitors?status=booked",
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeVisitorService) {
				assert.Equal(t, "", fake.lastSearchQuery)
			},
		},
		{
			name:           "missing status",
			target:         "/kiosk/visitors?q=ann",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "status must be booked or checked-in",
		},
		{
			name:           "checked-out not searchable",
			target:         "/kiosk/visitors?q=ann&status=checked-out",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "status must be booked or checked-in",
		},
		{
			name:           "service error",
			target:         "/kiosk/visitors?status=booked",
			fakeErr:        errors.New("store unavailable"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "store unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeVisitorService{searchErr: tt.fakeErr, searchResult: tt.fakeResult}
			ctrl := NewKioskController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			ctrl.Search(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				if tt.checkCall != nil {
					tt.checkCall(t, fake)
				}
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestKioskController_WalkIn(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkCall      func(t *testing.T, fake *fakeVisitorService)
	}{
		{
			name:       "success",
			body:       `{"name":"Bo Dahl","company":"Ericsson","host":"Erik Lund","language":"en"}`,
			wantStatus: http.StatusCreated,
			checkCall: func(t *testing.T, fake *fakeVisitorService) {
				assert.Equal(t, "Bo Dahl", fake.lastWalkIn.Name)
				assert.Equal(t, domain.LanguageEnglish, fake.lastWalkIn.Language)
			},
		},
		{
			name:           "missing company",
			body:           `{"name":"Bo Dahl","host":"Erik Lund"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "company is required",
		},
		{
			name:           "bad language",
			body:           `{"name":"Bo","company":"Ericsson","host":"Erik","language":"de"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "language must be sv or en",
		},
		{
			name:           "service error",
			body:           `{"name":"Bo","company":"Ericsson","host":"Erik"}`,
			fakeErr:        errors.New("store unavailable"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "store unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeVisitorService{walkInErr: tt.fakeErr}
			ctrl := NewKioskController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/kiosk/walk-ins", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.WalkIn(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				if tt.checkCall != nil {
					tt.checkCall(t, fake)
				}
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestKioskController_CheckIn(t *testing.T) {
	tests := []struct {
		name           string
		visitorID      string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkCall      func(t *testing.T, fake *fakeVisitorService)
	}{
		{
			name:       "success without body",
			visitorID:  "v-1",
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeVisitorService) {
				assert.Equal(t, "v-1", fake.lastCheckInID)
				assert.Nil(t, fake.lastCheckInOver)
			},
		},
		{
			name:       "success with corrections",
			visitorID:  "v-1",
			body:       `{"phone":"070-1234567"}`,
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeVisitorService) {
				require.NotNil(t, fake.lastCheckInOver)
				require.NotNil(t, fake.lastCheckInOver.Phone)
				assert.Equal(t, "070-1234567", *fake.lastCheckInOver.Phone)
				assert.Nil(t, fake.lastCheckInOver.Company)
			},
		},
		{
			name:           "missing visitorID",
			visitorID:      "",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "missing visitorID",
		},
		{
			name:           "not found",
			visitorID:      "v-missing",
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "not found",
		},
		{
			name:           "already checked in",
			visitorID:      "v-1",
			fakeErr:        domain.ErrConflict,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeVisitorService{checkInErr: tt.fakeErr}
			ctrl := NewKioskController(testLogger, fake)
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(http.MethodPost, "http://test/kiosk/visitors/x/check-in", bytes.NewBufferString(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(http.MethodPost, "http://test/kiosk/visitors/x/check-in", nil)
			}
			if tt.visitorID != "" {
				req.SetPathValue("visitorID", tt.visitorID)
			}
			rr := httptest.NewRecorder()

			ctrl.CheckIn(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				if tt.checkCall != nil {
					tt.checkCall(t, fake)
				}
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestKioskController_CheckOut(t *testing.T) {
	tests := []struct {
		name           string
		visitorID      string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			visitorID:  "v-1",
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing visitorID",
			visitorID:      "",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "missing visitorID",
		},
		{
			name:           "never checked in",
			visitorID:      "v-1",
			fakeErr:        domain.ErrConflict,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "conflict",
		},
		{
			name:           "not found",
			visitorID:      "v-missing",
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeVisitorService{checkOutErr: tt.fakeErr}
			ctrl := NewKioskController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/kiosk/visitors/x/check-out", nil)
			if tt.visitorID != "" {
				req.SetPathValue("visitorID", tt.visitorID)
			}
			rr := httptest.NewRecorder()

			ctrl.CheckOut(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.visitorID, fake.lastCheckOutID)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}
