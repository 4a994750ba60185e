package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaifcp/swift-resume/internal/ai"
)

// AIHandler serves writing suggestions for the editor.
type AIHandler struct {
	suggester *ai.Suggester
}

// NewAIHandler builds the handler.
func NewAIHandler(suggester *ai.Suggester) *AIHandler {
	return &AIHandler{suggester: suggester}
}

type suggestRequest struct {
	Kind    string `json:"kind" binding:"required"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

// Suggest returns canned suggestions for a summary or bullet points.
func (h *AIHandler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	suggestions, err := h.suggester.Suggest(req.Kind, req.Role, req.Company)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
