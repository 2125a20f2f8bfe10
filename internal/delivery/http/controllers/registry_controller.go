package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"visitordesk/internal/delivery/http/helpers"
	"visitordesk/internal/domain"
)

// RegistryController serves the saved-host and saved-visitor management
// surface plus the directory projections used for autocomplete.
type RegistryController struct {
	Logger    *slog.Logger
	Registry  domain.RegistryService
	Directory domain.DirectoryService
}

func NewRegistryController(logger *slog.Logger, registry domain.RegistryService, directory domain.DirectoryService) *RegistryController {
	return &RegistryController{Logger: logger, Registry: registry, Directory: directory}
}

// AddHostRequest is the request body for POST /admin/hosts.
type AddHostRequest struct {
	Name string `json:"name"`
}

// Validate implements helpers.Validator.
func (r *AddHostRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// AddHost godoc
// @Summary Add a saved host
// @Description Creates a saved host. Idempotent: an existing case-insensitive name match is returned with 200 instead of 201.
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.AddHostRequest true "Host name"
// @Success 200 {object} helpers.APIResponse "Already present"
// @Success 201 {object} helpers.APIResponse "Created"
// @Router /admin/hosts [post]
func (c *RegistryController) AddHost(w http.ResponseWriter, r *http.Request) {
	var req AddHostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	host, created, err := c.Registry.AddHost(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	if created {
		helpers.WriteJSONSuccess(w, http.StatusCreated, host)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, host)
}

// ListHosts godoc
// @Summary List known hosts
// @Description Returns the saved hosts sorted ascending by name (locale-aware).
// @Tags registry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/hosts [get]
func (c *RegistryController) ListHosts(w http.ResponseWriter, r *http.Request) {
	hosts, err := c.Directory.KnownHosts(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, hosts)
}

// UpdateHostRequest is the request body for PUT /admin/hosts/{hostID}.
type UpdateHostRequest struct {
	Name *string `json:"name"`
}

// UpdateHost godoc
// @Summary Rename a saved host
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID"
// @Param body body controllers.UpdateHostRequest true "New name"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/hosts/{hostID} [put]
func (c *RegistryController) UpdateHost(w http.ResponseWriter, r *http.Request) {
	hostID := r.PathValue("hostID")
	if hostID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing hostID")
		return
	}
	var req UpdateHostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	host, err := c.Registry.UpdateHost(r.Context(), hostID, domain.SavedHostUpdate{Name: req.Name})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, host)
}

// DeleteHost godoc
// @Summary Delete a saved host
// @Tags registry
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/hosts/{hostID} [delete]
func (c *RegistryController) DeleteHost(w http.ResponseWriter, r *http.Request) {
	hostID := r.PathValue("hostID")
	if hostID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing hostID")
		return
	}
	if err := c.Registry.DeleteHost(r.Context(), hostID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// AddSavedVisitorRequest is the request body for POST /admin/saved-visitors.
type AddSavedVisitorRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
}

// Validate implements helpers.Validator.
func (r *AddSavedVisitorRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Company) == "" {
		errs = append(errs, "company is required")
	}
	return errs
}

// AddSavedVisitor godoc
// @Summary Add a saved visitor
// @Description Creates a saved visitor. A case-insensitive name collision replaces the existing record.
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.AddSavedVisitorRequest true "Visitor details"
// @Success 201 {object} helpers.APIResponse
// @Router /admin/saved-visitors [post]
func (c *RegistryController) AddSavedVisitor(w http.ResponseWriter, r *http.Request) {
	var req AddSavedVisitorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sv, err := c.Registry.AddVisitor(r.Context(), domain.SavedVisitorInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sv)
}

// ListSavedVisitors godoc
// @Summary List known visitors
// @Description Returns the saved visitors sorted ascending by name (locale-aware).
// @Tags registry
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/saved-visitors [get]
func (c *RegistryController) ListSavedVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := c.Directory.KnownVisitors(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, visitors)
}

// UpdateSavedVisitorRequest is the request body for PUT /admin/saved-visitors/{visitorID}.
type UpdateSavedVisitorRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
}

// UpdateSavedVisitor godoc
// @Summary Update a saved visitor
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param visitorID path string true "Saved visitor ID"
// @Param body body controllers.UpdateSavedVisitorRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /admin/saved-visitors/{visitorID} [put]
func (c *RegistryController) UpdateSavedVisitor(w http.ResponseWriter, r *http.Request) {
	visitorID := r.PathValue("visitorID")
	if visitorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing visitorID")
		return
	}
	var req UpdateSavedVisitorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sv, err := c.Registry.UpdateVisitor(r.Context(), visitorID, domain.SavedVisitorUpdate{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sv)
}

// DeleteSavedVisitor godoc
// @Summary Delete a saved visitor
// @Tags registry
// @Produce json
// @Security BearerAuth
// @Param visitorID path string true "Saved visitor ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/saved-visitors/{visitorID} [delete]
func (c *RegistryController) DeleteSavedVisitor(w http.ResponseWriter, r *http.Request) {
	visitorID := r.PathValue("visitorID")
	if visitorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing visitorID")
		return
	}
	if err := c.Registry.DeleteVisitor(r.Context(), visitorID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Autofill godoc
// @Summary Auto-fill a booking draft
// @Description Fills empty company and email fields from the saved visitor matching the name case-insensitively. Values the user already typed are kept.
// @Tags registry
// @Produce json
// @Security BearerAuth
// @Param name query string true "Visitor name"
// @Param company query string false "Company the user already typed"
// @Param email query string false "Email the user already typed"
// @Success 200 {object} helpers.APIResponse
// @Router /admin/directory/autofill [get]
func (c *RegistryController) Autofill(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	draft, err := c.Directory.Autofill(r.Context(), domain.VisitorDraft{
		Name:    q.Get("name"),
		Company: q.Get("company"),
		Email:   q.Get("email"),
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}
