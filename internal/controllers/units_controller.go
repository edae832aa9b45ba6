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

var unitValidate = validator.New()

type UnitsController struct {
	unitService *services.UnitService
}

func NewUnitsController(unitService *services.UnitService) *UnitsController {
	return &UnitsController{unitService: unitService}
}

// POST /api/v1/units
func (c *UnitsController) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := unitValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.unitService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GET /api/v1/units?property_id=...
func (c *UnitsController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.unitService.List(r.Context(), r.URL.Query().Get("property_id"))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/units/{id}
func (c *UnitsController) GetUnitHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.unitService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PATCH /api/v1/units/{id}
func (c *UnitsController) UpdateUnitHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := unitValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.unitService.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/units/{id}
func (c *UnitsController) DeleteUnitHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.unitService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
