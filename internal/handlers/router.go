package handlers

import (
	"time"

	_ "trivia-backend/docs"
	"trivia-backend/internal/middleware"
	"trivia-backend/internal/services"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter wires every route and the shared middleware onto a fresh engine.
func NewRouter(trivia *services.TriviaService, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.AccessControl())
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(middleware.Metrics())
	r.Use(ginzap.CustomRecoveryWithZap(log, true, Recover))
	r.Use(middleware.CORS())

	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)

	categoryHandler := NewCategoryHandler(trivia, log)
	questionHandler := NewQuestionHandler(trivia, log)
	quizHandler := NewQuizHandler(trivia, log)
	healthHandler := NewHealthHandler(trivia, log)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions", categoryHandler.QuestionsByCategory)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.PostQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
