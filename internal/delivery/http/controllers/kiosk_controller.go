package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"visitordesk/internal/delivery/http/helpers"
	"visitordesk/internal/domain"
)

// KioskController serves the self-service check-in/check-out surface. Kiosk
// routes are unauthenticated; the kiosk is a physical device in the lobby.
type KioskController struct {
	Logger  *slog.Logger
	Service domain.VisitorService
}

func NewKioskController(logger *slog.Logger, svc domain.VisitorService) *KioskController {
	return &KioskController{Logger: logger, Service: svc}
}

// Search godoc
// @Summary Search visitors by name
// @Description Case-insensitive substring search on name, scoped by status: booked for check-in, checked-in for check-out.
// @Tags kiosk
// @Produce json
// @Param q query string false "Name fragment"
// @Param status query string true "booked or checked-in"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /kiosk/visitors [get]
func (c *KioskController) Search(w http.ResponseWriter, r *http.Request) {
	status := domain.VisitorStatus(r.URL.Query().Get("status"))
	if status != domain.StatusBooked && status != domain.StatusCheckedIn {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "status must be booked or checked-in")
		return
	}
	visitors, err := c.Service.Search(r.Context(), r.URL.Query().Get("q"), status)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, visitors)
}

// WalkInRequest is the request body for POST /kiosk/walk-ins.
type WalkInRequest struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Host     string `json:"host"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

// Validate implements helpers.Validator.
func (r *WalkInRequest) Validate() []string {
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

// WalkIn godoc
// @Summary Register a walk-in visitor
// @Description Creates a visitor without a prior booking, checked in immediately.
// @Tags kiosk
// @Accept json
// @Produce json
// @Param body body controllers.WalkInRequest true "Walk-in details"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /kiosk/walk-ins [post]
func (c *KioskController) WalkIn(w http.ResponseWriter, r *http.Request) {
	var req WalkInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	v, err := c.Service.WalkIn(r.Context(), domain.WalkIn{
		Name:     req.Name,
		Company:  req.Company,
		Host:     req.Host,
		Email:    req.Email,
		Phone:    req.Phone,
		Language: domain.Language(req.Language),
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, v)
}

// CheckInRequest is the optional request body for check-in, carrying detail
// corrections collected at the kiosk.
type CheckInRequest struct {
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// CheckIn godoc
// @Summary Check in a booked visitor
// @Description Transitions a booked visitor to checked-in, applying any supplied corrections in the same update.
// @Tags kiosk
// @Accept json
// @Produce json
// @Param visitorID path string true "Visitor ID"
// @Param body body controllers.CheckInRequest false "Detail corrections"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /kiosk/visitors/{visitorID}/check-in [post]
func (c *KioskController) CheckIn(w http.ResponseWriter, r *http.Request) {
	visitorID := r.PathValue("visitorID")
	if visitorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing visitorID")
		return
	}
	var overrides *domain.VisitorUpdate
	if r.ContentLength > 0 {
		var req CheckInRequest
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
		overrides = &domain.VisitorUpdate{
			Company: req.Company,
			Email:   req.Email,
			Phone:   req.Phone,
		}
	}
	v, err := c.Service.CheckIn(r.Context(), visitorID, overrides)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}

// CheckOut godoc
// @Summary Check out a visitor
// @Description Transitions a checked-in visitor to checked-out.
// @Tags kiosk
// @Produce json
// @Param visitorID path string true "Visitor ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /kiosk/visitors/{visitorID}/check-out [post]
func (c *KioskController) CheckOut(w http.ResponseWriter, r *http.Request) {
	visitorID := r.PathValue("visitorID")
	if visitorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing visitorID")
		return
	}
	v, err := c.Service.CheckOut(r.Context(), visitorID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}
