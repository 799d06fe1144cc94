package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuestionsNeverNil(t *testing.T) {
	out := FormatQuestions(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFormatDropsAssociation(t *testing.T) {
	q := Question{ID: 4, Question: "Q", Answer: "A", Category: 2, Difficulty: 3, CategoryRef: &Category{ID: 2, Type: "Art"}}
	assert.Equal(t, QuestionView{ID: 4, Question: "Q", Answer: "A", Category: 2, Difficulty: 3}, q.Format())
}
