package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/CarlinQuentin/property-manager/internal/dtos"
	"github.com/CarlinQuentin/property-manager/internal/services"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

var tenantValidate = validator.New()

type TenantsController struct {
	tenantService *services.TenantService
}

func NewTenantsController(tenantService *services.TenantService) *TenantsController {
	return &TenantsController{tenantService: tenantService}
}

// POST /api/v1/tenants
func (c *TenantsController) CreateTenantHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.tenantService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GET /api/v1/tenants
func (c *TenantsController) ListTenantsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.tenantService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/tenants/{id}
func (c *TenantsController) GetTenantHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.tenantService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PATCH /api/v1/tenants/{id}
func (c *TenantsController) UpdateTenantHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.tenantService.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/tenants/{id}
func (c *TenantsController) DeleteTenantHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.tenantService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
