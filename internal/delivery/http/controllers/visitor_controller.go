package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"visitordesk/internal/delivery/http/helpers"
	"visitordesk/internal/domain"
)

// VisitorController serves the admin booking surface.
type VisitorController struct {
	Logger  *slog.Logger
	Service domain.VisitorService
}

func NewVisitorController(logger *slog.Logger, svc domain.VisitorService) *VisitorController {
	return &VisitorController{Logger: logger, Service: svc}
}

// BookVisitorRequest is the request body for POST /admin/visitors.
type BookVisitorRequest struct {
	Name            string     `json:"name"`
	Company         string     `json:"company"`
	Host            string     `json:"host"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	ExpectedArrival *time.Time `json:"expected_arrival"`
	Language        string     `json:"language"`
}

// Validate implements helpers.Validator.
func (r *BookVisitorRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Company) == "" {
		errs = append(errs, "company is required")
	}
	if strings.TrimSpace(r.Host) == "" {
		errs = append(errs, "host is required")
	}
	if r.Language != "" && !domain.Language(r.Language).Valid() {
		errs = append(errs, "language must be sv or en")
	}
	return errs
}

// Book godoc
// @Summary Book a visitor
// @Description Creates a pre-booked visitor. The host and visitor are learned into the saved directories when new.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.BookVisitorRequest true "Booking"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/visitors [post]
func (c *VisitorController) Book(w http.ResponseWriter, r *http.Request) {
	var req BookVisitorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	v, err := c.Service.Book(r.Context(), domain.Booking{
		Name:            req.Name,
		Company:         req.Company,
		Host:            req.Host,
		Email:           req.Email,
		Phone:           req.Phone,
		ExpectedArrival: req.ExpectedArrival,
		Language:        domain.Language(req.Language),
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, v)
}

// List godoc
// @Summary List all visitors
// @Description Returns all visitor records, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/visitors [get]
func (c *VisitorController) List(w http.ResponseWriter, r *http.Request) {
	visitors, err := c.Service.List(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	// The repository keeps insertion order; the admin list shows newest
	// bookings first.
	reversed := make([]*domain.Visitor, 0, len(visitors))
	for i := len(visitors) - 1; i >= 0; i-- {
		reversed = append(reversed, visitors[i])
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reversed)
}

// EditVisitorRequest is the request body for PATCH /admin/visitors/{visitorID}.
// Absent fields are left unchanged.
type EditVisitorRequest struct {
	Name            *string    `json:"name"`
	Company         *string    `json:"company"`
	Host            *string    `json:"host"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	ExpectedArrival *time.Time `json:"expected_arrival"`
	Language        *string    `json:"language"`
}

// Validate implements helpers.Validator.
func (r *EditVisitorRequest) Validate() []string {
	if r.Language != nil && !domain.Language(*r.Language).Valid() {
		return []string{"language must be sv or en"}
	}
	return nil
}

// Edit godoc
// @Summary Edit a booked visitor
// @Description Overwrites the supplied fields of a visitor that has not yet checked in.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param visitorID path string true "Visitor ID"
// @Param body body controllers.EditVisitorRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/visitors/{visitorID} [patch]
func (c *VisitorController) Edit(w http.ResponseWriter, r *http.Request) {
	visitorID := r.PathValue("visitorID")
	if visitorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing visitorID")
		return
	}
	var req EditVisitorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.VisitorUpdate{
		Name:            req.Name,
		Company:         req.Company,
		Host:            req.Host,
		Email:           req.Email,
		Phone:           req.Phone,
		ExpectedArrival: req.ExpectedArrival,
	}
	if req.Language != nil {
		lang := domain.Language(*req.Language)
		update.Language = &lang
	}
	v, err := c.Service.Edit(r.Context(), visitorID, update)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}

// AuditLog godoc
// @Summary Read the audit log
// @Description Returns the append-only log of lifecycle transitions, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/logs [get]
func (c *VisitorController) AuditLog(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.AuditLog(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}
