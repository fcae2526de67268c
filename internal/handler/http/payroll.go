package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/payroll"
	"github.com/peopleops-ph/hrops-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByUserID(w http.ResponseWriter, r *http.Request)
	DeleteByUserID(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Process upserts the record for the employee named in the body. A new record
// answers 201, a merge into an existing one answers 200.
func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, created, err := h.payrollService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Payroll record created", result)
		return
	}
	response.SuccessWithMessage(w, "Payroll record updated", result)
}

func (h *payrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payrollService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.payrollService.GetByUserID(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeleteByUserID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.payrollService.DeleteByUserID(r.Context(), userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}

func (h *payrollHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.payrollService.Send(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record sent", result)
}

func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	doc, err := h.payrollService.Payslip(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, "payslip-"+userID+".pdf", doc)
}
