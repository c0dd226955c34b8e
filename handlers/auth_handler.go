package handlers

import (
	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/services"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	user, err := h.authService.UpdateProfile(userID, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile updated", user)
}
