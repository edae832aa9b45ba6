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

var leaseValidate = validator.New()

type LeasesController struct {
	leaseService *services.LeaseService
}

func NewLeasesController(leaseService *services.LeaseService) *LeasesController {
	return &LeasesController{leaseService: leaseService}
}

// POST /api/v1/leases
func (c *LeasesController) CreateLeaseHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := leaseValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.leaseService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GET /api/v1/leases
func (c *LeasesController) ListLeasesHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.leaseService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/leases/{id}
func (c *LeasesController) GetLeaseHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.leaseService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PATCH /api/v1/leases/{id}
func (c *LeasesController) UpdateLeaseHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := leaseValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.leaseService.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/leases/{id}
func (c *LeasesController) DeleteLeaseHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.leaseService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
