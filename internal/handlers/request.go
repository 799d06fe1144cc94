package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LooseInt decodes a JSON number or a string holding one. Form-driven
// clients tend to send ids as strings.
type LooseInt int

func (n *LooseInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = unq
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", b)
	}
	*n = LooseInt(v)
	return nil
}

type CreateQuestionRequest struct {
	Question   string   `json:"question" validate:"required" example:"How far is the moon away from the earth?"`
	Answer     string   `json:"answer" validate:"required" example:"238,900 mi"`
	Category   LooseInt `json:"category" validate:"required,min=1" example:"1"`
	Difficulty LooseInt `json:"difficulty" validate:"required,min=1,max=5" example:"4"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

type questionsRequestKind int

const (
	requestEmpty questionsRequestKind = iota
	requestSearch
	requestCreate
)

// questionsRequest is the classified body of POST /questions.
type questionsRequest struct {
	kind       questionsRequestKind
	searchTerm string
	create     CreateQuestionRequest
}

var (
	errMalformedBody = errors.New("request body is not a JSON object")
	errInvalidSearch = errors.New("searchTerm must be a string")
)

// parseQuestionsRequest decides which of search, create or empty a body is.
// Errors wrapping errMalformedBody or errInvalidSearch are client syntax
// problems; any other error is a create payload that failed validation.
func parseQuestionsRequest(raw []byte) (questionsRequest, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return questionsRequest{kind: requestEmpty}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return questionsRequest{}, fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	if term, ok := fields["searchTerm"]; ok {
		var s *string
		if err := json.Unmarshal(term, &s); err != nil {
			return questionsRequest{}, errInvalidSearch
		}
		req := questionsRequest{kind: requestSearch}
		if s != nil {
			req.searchTerm = *s
		}
		return req, nil
	}

	if len(fields) == 0 {
		return questionsRequest{kind: requestEmpty}, nil
	}

	var create CreateQuestionRequest
	if err := json.Unmarshal(raw, &create); err != nil {
		return questionsRequest{}, fmt.Errorf("decode question: %w", err)
	}
	if err := validate.Struct(create); err != nil {
		return questionsRequest{}, err
	}
	return questionsRequest{kind: requestCreate, create: create}, nil
}

type QuizCategoryRequest struct {
	ID   json.RawMessage `json:"id" swaggertype:"integer" example:"0"`
	Type string          `json:"type" example:"History"`
}

type QuizRequest struct {
	PreviousQuestions []uint               `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// categoryID returns the requested category, reporting false when the id is
// missing, null or not a non-negative integer.
func (r QuizRequest) categoryID() (uint, bool) {
	if r.QuizCategory == nil || len(r.QuizCategory.ID) == 0 {
		return 0, false
	}
	var id LooseInt
	if string(r.QuizCategory.ID) == "null" {
		return 0, false
	}
	if err := json.Unmarshal(r.QuizCategory.ID, &id); err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}
