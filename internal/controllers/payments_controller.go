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

var paymentValidate = validator.New()

type PaymentsController struct {
	paymentService *services.PaymentService
}

func NewPaymentsController(paymentService *services.PaymentService) *PaymentsController {
	return &PaymentsController{paymentService: paymentService}
}

// POST /api/v1/payments
func (c *PaymentsController) CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := paymentValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.paymentService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GET /api/v1/payments
func (c *PaymentsController) ListPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.paymentService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/payments/{id}
func (c *PaymentsController) GetPaymentHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.paymentService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PATCH /api/v1/payments/{id}
func (c *PaymentsController) UpdatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := paymentValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.paymentService.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/payments/{id}
func (c *PaymentsController) DeletePaymentHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.paymentService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
