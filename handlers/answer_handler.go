package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/services"
)

type AnswerHandler struct {
	answerService services.AnswerService
	Helper        *helper.HTTPHelper
}

func NewAnswerHandler(answerService services.AnswerService, h *helper.HTTPHelper) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, Helper: h}
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	userID := c.GetString("user_id")
	questionID := c.Param("id")

	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	answer, err := h.answerService.CreateAnswer(questionID, req, userID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Answer posted", answer)
}

// AcceptAnswer toggles acceptance. Only the question author gets through;
// re-accepting a different answer moves the mark.
func (h *AnswerHandler) AcceptAnswer(c *gin.Context) {
	userID := c.GetString("user_id")
	questionID := c.Param("id")
	answerID := c.Param("answer_id")

	answer, err := h.answerService.AcceptAnswer(questionID, answerID, userID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer acceptance updated", answer)
}
