package services

import (
	"testing"

	"trivia-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuizQuestionAllCategories(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.SeedQuestions(t, db, 1, 2)
	b := testutil.SeedQuestions(t, db, 4, 2)
	svc := NewTriviaService(db, 10, WithPicker(func(n int) int { return n - 1 }))

	q, err := svc.NextQuizQuestion(AllCategories, nil)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, b[1].ID, q.ID)

	q, err = svc.NextQuizQuestion(AllCategories, []uint{b[0].ID, b[1].ID})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, a[1].ID, q.ID)
}

func TestNextQuizQuestionByCategory(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedQuestions(t, db, 1, 3)
	history := testutil.SeedQuestions(t, db, 4, 3)
	svc := NewTriviaService(db, 10, WithPicker(func(int) int { return 0 }))

	q, err := svc.NextQuizQuestion(4, []uint{history[0].ID})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, history[1].ID, q.ID)
	assert.EqualValues(t, 4, q.Category)
}

func TestNextQuizQuestionExhausted(t *testing.T) {
	db := testutil.NewDB(t)
	qs := testutil.SeedQuestions(t, db, 1, 3)
	svc := NewTriviaService(db, 10)

	prev := make([]uint, 0, len(qs))
	for _, q := range qs {
		prev = append(prev, q.ID)
	}

	q, err := svc.NextQuizQuestion(AllCategories, prev)
	require.NoError(t, err)
	assert.Nil(t, q)

	q, err = svc.NextQuizQuestion(5, nil)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuizQuestionNeverRepeats(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedQuestions(t, db, 3, 5)
	svc := NewTriviaService(db, 10)

	var asked []uint
	for i := 0; i < 5; i++ {
		q, err := svc.NextQuizQuestion(3, asked)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, asked, q.ID)
		asked = append(asked, q.ID)
	}

	q, err := svc.NextQuizQuestion(3, asked)
	require.NoError(t, err)
	assert.Nil(t, q)
}
