package handlers

import (
	"net/http"
	"strconv"

	"trivia-backend/internal/models"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewCategoryHandler(trivia *services.TriviaService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{trivia: trivia, log: log}
}

type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Questions       []models.QuestionView `json:"questions"`
	TotalQuestions  int                   `json:"total_questions"`
	CurrentCategory string                `json:"current_category"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  Map of category id to category type
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.trivia.Categories()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: cats})
}

// QuestionsByCategory godoc
// @Summary      List questions in a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWith(c, http.StatusNotFound)
		return
	}

	cat, questions, err := h.trivia.QuestionsByCategory(uint(categoryID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Questions:       models.FormatQuestions(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: cat.Type,
	})
}
