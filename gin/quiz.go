package gin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type urlRequest struct {
	URL string `json:"url" binding:"required"`
}

func (s *Server) handleValidateURL(c *gin.Context) {
	var req urlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "url is required"})
		return
	}

	result, err := s.svc.ValidateURL(c.Request.Context(), req.URL)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGenerateQuiz(c *gin.Context) {
	var req urlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "url is required"})
		return
	}

	quiz, err := s.svc.GenerateQuiz(c.Request.Context(), req.URL, 0)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (s *Server) handleQuizHistory(c *gin.Context) {
	summaries, err := s.svc.Quizzes(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) handleQuizByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid quiz id"})
		return
	}

	quiz, err := s.svc.QuizByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}
