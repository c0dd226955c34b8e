package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/services"
)

type VoteHandler struct {
	voteService services.VoteService
	Helper      *helper.HTTPHelper
}

func NewVoteHandler(voteService services.VoteService, h *helper.HTTPHelper) *VoteHandler {
	return &VoteHandler{voteService: voteService, Helper: h}
}

func (h *VoteHandler) VoteQuestion(c *gin.Context) {
	h.vote(c, models.SubjectQuestion)
}

func (h *VoteHandler) VoteAnswer(c *gin.Context) {
	h.vote(c, models.SubjectAnswer)
}

func (h *VoteHandler) vote(c *gin.Context, subject models.SubjectType) {
	userID := c.GetString("user_id")
	subjectID := c.Param("id")

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	result, err := h.voteService.Vote(subject, subjectID, userID, req.Direction)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Vote recorded", result)
}
