package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewQuestionHandler(trivia *services.TriviaService, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{trivia: trivia, log: log}
}

type QuestionListResponse struct {
	Questions       []models.QuestionView `json:"questions"`
	TotalQuestions  int64                 `json:"total_questions"`
	Categories      map[uint]string       `json:"categories"`
	CurrentCategory *string               `json:"current_category" swaggertype:"string"`
}

type QuestionSearchResponse struct {
	Questions       []models.QuestionView `json:"questions"`
	TotalQuestions  int                   `json:"total_questions"`
	CurrentCategory *string               `json:"current_category" swaggertype:"string"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	ID      uint `json:"id" example:"9"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  One page of questions with the total count and every category
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.trivia.ListQuestions(page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Questions:      models.FormatQuestions(result.Questions),
		TotalQuestions: result.Total,
		Categories:     result.Categories,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWith(c, http.StatusNotFound)
		return
	}

	if err := h.trivia.DeleteQuestion(uint(questionID)); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, DeleteQuestionResponse{Success: true, ID: uint(questionID)})
}

// PostQuestions godoc
// @Summary      Search or create questions
// @Description  A body with searchTerm searches question text case-insensitively.
// @Description  Any other non-empty body creates a question.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data, or {searchTerm}"
// @Success      200 {object} QuestionSearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) PostQuestions(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		abortWith(c, http.StatusBadRequest)
		return
	}

	req, err := parseQuestionsRequest(raw)
	switch {
	case errors.Is(err, errMalformedBody), errors.Is(err, errInvalidSearch):
		abortWith(c, http.StatusBadRequest)
		return
	case err != nil:
		h.log.Debug("invalid question payload", zap.Error(err))
		abortWith(c, http.StatusUnprocessableEntity)
		return
	}

	switch req.kind {
	case requestSearch:
		h.search(c, req.searchTerm)
	case requestCreate:
		h.create(c, req.create)
	default:
		abortWith(c, http.StatusBadRequest)
	}
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	questions, err := h.trivia.SearchQuestions(term)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, QuestionSearchResponse{
		Questions:      models.FormatQuestions(questions),
		TotalQuestions: len(questions),
	})
}

func (h *QuestionHandler) create(c *gin.Context, req CreateQuestionRequest) {
	_, err := h.trivia.CreateQuestion(services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   uint(req.Category),
		Difficulty: int(req.Difficulty),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
