package handlers

import (
	"net/http"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewQuizHandler(trivia *services.TriviaService, log *zap.Logger) *QuizHandler {
	return &QuizHandler{trivia: trivia, log: log}
}

type QuizResponse struct {
	Question *models.QuestionView `json:"question"`
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  Random question from quiz_category (id 0 means all) not in previous_questions.
// @Description  question is null once every candidate has been asked.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest)
		return
	}

	categoryID, ok := req.categoryID()
	if !ok {
		abortWith(c, http.StatusNotFound)
		return
	}

	question, err := h.trivia.NextQuizQuestion(categoryID, req.PreviousQuestions)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := QuizResponse{}
	if question != nil {
		view := question.Format()
		resp.Question = &view
	}
	c.JSON(http.StatusOK, resp)
}
