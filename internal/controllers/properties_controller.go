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

var propertyValidate = validator.New()

type PropertiesController struct {
	propertyService *services.PropertyService
}

func NewPropertiesController(propertyService *services.PropertyService) *PropertiesController {
	return &PropertiesController{propertyService: propertyService}
}

// POST /api/v1/properties
func (c *PropertiesController) CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := propertyValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.propertyService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GET /api/v1/properties
func (c *PropertiesController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.propertyService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/properties/{id}
func (c *PropertiesController) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.propertyService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/properties/{id}/units
func (c *PropertiesController) ListPropertyUnitsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.propertyService.ListUnits(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PATCH /api/v1/properties/{id}
func (c *PropertiesController) UpdatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := propertyValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.propertyService.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/properties/{id}
func (c *PropertiesController) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.propertyService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
