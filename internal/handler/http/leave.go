package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-ph/hrops-backend-go/internal/domain/leave"
	"github.com/peopleops-ph/hrops-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	RunAccrual(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// RunAccrual triggers an accrual pass outside the schedule. The run shares
// the scheduler's job lock, so a concurrent scheduled run reports skipped.
func (h *leaveHandlerImpl) RunAccrual(w http.ResponseWriter, r *http.Request) {
	result := h.leaveService.RunAccrual(r.Context(), time.Now())

	if !result.Success {
		response.InternalServerError(w, result.Error)
		return
	}
	if result.Skipped {
		response.SuccessWithMessage(w, "Accrual run skipped, another run is in progress", result)
		return
	}
	response.SuccessWithMessage(w, "Accrual run completed", result)
}

func (h *leaveHandlerImpl) GetLedger(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.leaveService.GetLedger(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
