package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

const DefaultQuestionsPerPage = 10

type TriviaService struct {
	db      *gorm.DB
	perPage int
	pick    func(n int) int
}

type Option func(*TriviaService)

// WithPicker replaces the uniform random index source used by the quiz.
func WithPicker(pick func(n int) int) Option {
	return func(s *TriviaService) { s.pick = pick }
}

func NewTriviaService(db *gorm.DB, perPage int, opts ...Option) *TriviaService {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	s := &TriviaService{db: db, perPage: perPage, pick: rand.Intn}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TriviaService) PerPage() int {
	return s.perPage
}

func (s *TriviaService) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Categories returns every category keyed by id.
func (s *TriviaService) Categories() (map[uint]string, error) {
	var cats []models.Category
	if err := s.db.Order("id ASC").Find(&cats).Error; err != nil {
		return nil, classify(err)
	}
	out := make(map[uint]string, len(cats))
	for _, c := range cats {
		out[c.ID] = c.Type
	}
	return out, nil
}

type QuestionPage struct {
	Questions  []models.Question
	Total      int64
	Categories map[uint]string
}

// ListQuestions returns one page of questions ordered by id. A page with no
// rows is reported as ErrNotFound.
func (s *TriviaService) ListQuestions(page int) (*QuestionPage, error) {
	if page < 1 || page-1 > math.MaxInt/s.perPage {
		return nil, fmt.Errorf("%w: page %d", ErrNotFound, page)
	}

	var questions []models.Question
	err := s.db.Order("id ASC").
		Offset((page - 1) * s.perPage).
		Limit(s.perPage).
		Find(&questions).Error
	if err != nil {
		return nil, classify(err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: page %d", ErrNotFound, page)
	}

	var total int64
	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, classify(err)
	}

	cats, err := s.Categories()
	if err != nil {
		return nil, err
	}

	return &QuestionPage{Questions: questions, Total: total, Categories: cats}, nil
}

func (s *TriviaService) DeleteQuestion(questionID uint) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return classify(err)
	}

	result := s.db.Delete(&question)
	if result.Error != nil {
		return classifyWrite(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: question %d", ErrNotFound, questionID)
	}
	return nil
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

// CreateQuestion inserts a question after checking its category exists.
func (s *TriviaService) CreateQuestion(in QuestionInput) (*models.Question, error) {
	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		return nil, fmt.Errorf("%w: question and answer are required", ErrInvalidInput)
	}

	var cat models.Category
	if err := s.db.First(&cat, in.Category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d does not exist", ErrConstraint, in.Category)
		}
		return nil, classify(err)
	}

	question := models.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, classifyWrite(err)
	}
	return &question, nil
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text. LIKE wildcards in term are matched literally.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	clause, pattern := searchClause(s.db.Dialector.Name(), term)

	var questions []models.Question
	err := s.db.Where(clause, pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, classify(err)
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategory(categoryID uint) (*models.Category, []models.Question, error) {
	var cat models.Category
	if err := s.db.First(&cat, categoryID).Error; err != nil {
		return nil, nil, classify(err)
	}

	var questions []models.Question
	if err := s.db.Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, nil, classify(err)
	}
	if len(questions) == 0 {
		return &cat, nil, fmt.Errorf("%w: category %d has no questions", ErrNotFound, categoryID)
	}
	return &cat, questions, nil
}

// searchClause picks ILIKE on postgres, which folds non-ASCII letters too.
// Other drivers fall back to LOWER(...) LIKE, which sqlite folds for ASCII only.
func searchClause(dialect, term string) (string, string) {
	if dialect == "postgres" {
		return `question ILIKE ? ESCAPE '\'`, "%" + escapeLike(term) + "%"
	}
	return `LOWER(question) LIKE ? ESCAPE '\'`, "%" + escapeLike(strings.ToLower(term)) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
