package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService, h *helper.HTTPHelper) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, Helper: h}
}

// GetQuestions serves the filtered, searched, sorted and paginated feed.
// Anonymous requests are allowed; a viewer id only adds vote/bookmark
// decoration.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var params models.QuestionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	viewerID := c.GetString("user_id")

	questions, total, applied, err := h.questionService.GetQuestions(params, viewerID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Questions loaded", map[string]interface{}{
		"questions": questions,
		"paging":    h.Helper.GeneratePaging(applied.Page, applied.Limit, total),
	})
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := c.Param("id")
	viewerID := c.GetString("user_id")

	detail, err := h.questionService.GetQuestion(id, viewerID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question loaded", detail)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	question, err := h.questionService.CreateQuestion(req, userID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Question created", question)
}

func (h *QuestionHandler) ToggleBookmark(c *gin.Context) {
	userID := c.GetString("user_id")
	questionID := c.Param("id")

	result, err := h.questionService.ToggleBookmark(questionID, userID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Bookmark toggled", result)
}
