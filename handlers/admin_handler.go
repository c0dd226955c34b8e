package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/services"
)

type AdminHandler struct {
	adminService services.AdminService
	Helper       *helper.HTTPHelper
}

func NewAdminHandler(adminService services.AdminService, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{adminService: adminService, Helper: h}
}

func (h *AdminHandler) GetUsers(c *gin.Context) {
	users := h.adminService.ListUsers()
	h.Helper.SendSuccess(c, "Users loaded", users)
}

func (h *AdminHandler) ChangeRole(c *gin.Context) {
	var req models.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.adminService.ChangeRole(c.Param("id"), req.Role)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Role updated", user)
}

func (h *AdminHandler) DeleteQuestion(c *gin.Context) {
	if err := h.adminService.RemoveQuestion(c.Param("id")); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question removed", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) DeleteAnswer(c *gin.Context) {
	if err := h.adminService.RemoveAnswer(c.Param("id")); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer removed", h.Helper.EmptyJsonMap())
}

// CreateReport is open to any signed-in user; the admin-only surface is
// listing and resolving.
func (h *AdminHandler) CreateReport(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	report, err := h.adminService.CreateReport(req, userID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Report submitted", report)
}

func (h *AdminHandler) GetReports(c *gin.Context) {
	var params models.ReportListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	reports := h.adminService.ListReports(params)
	h.Helper.SendSuccess(c, "Reports loaded", reports)
}

func (h *AdminHandler) UpdateReportStatus(c *gin.Context) {
	var req models.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	report, err := h.adminService.UpdateReportStatus(c.Param("id"), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Report updated", report)
}
