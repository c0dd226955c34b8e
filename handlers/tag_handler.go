package handlers

import (
	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/services"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	tag, err := h.tagService.CreateTag(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Tag created", tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags := h.tagService.GetTags()
	h.Helper.SendSuccess(c, "Tags loaded", tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	tag, err := h.tagService.GetTag(c.Param("id"))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag loaded", tag)
}
