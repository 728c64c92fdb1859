package http

import (
	"encoding/json"
	"net/http"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/auth"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/handler/http/response"
)

type AuthHandler interface {
	LoginAdmin(w http.ResponseWriter, r *http.Request)
	LoginEmployee(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// LoginAdmin implements AuthHandler.
func (h *authHandlerImpl) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req auth.AdminLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.LoginAdmin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// LoginEmployee implements AuthHandler.
func (h *authHandlerImpl) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	var req auth.EmployeeLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.LoginEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}
