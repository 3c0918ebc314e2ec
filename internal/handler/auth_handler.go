package handler

import (
	"encoding/json"
	"net/http"

	"writeit-server/internal/domain"
	"writeit-server/internal/service"
	"writeit-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	accounts  *service.AccountService
	validator *validator.Validate
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		validator: validator.New(),
	}
}

type registerResponse struct {
	Success bool             `json:"success"`
	User    *domain.UserInfo `json:"user"`
	Message string           `json:"message"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user, err := h.accounts.Register(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, registerResponse{
		Success: true,
		User:    user,
		Message: "User registered",
	})
}

type loginResponse struct {
	Success      bool             `json:"success"`
	User         *domain.UserInfo `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	ExpiresIn    int64            `json:"expiresIn"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	session, err := h.accounts.Login(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, loginResponse{
		Success:      true,
		User:         session.User,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
	})
}

type refreshResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	pair, err := h.accounts.Refresh(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, refreshResponse{
		Success:     true,
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
	})
}
