package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/eduviz/internal/generator"
	"github.com/yungbote/eduviz/internal/http/response"
)

type SubjectHandler struct{}

func NewSubjectHandler() *SubjectHandler { return &SubjectHandler{} }

// GET /api/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	response.RespondOK(c, gin.H{"subjects": generator.Subjects()})
}
