package services

import "trivia-backend/internal/models"

// AllCategories selects quiz candidates from every category.
const AllCategories uint = 0

// NextQuizQuestion picks one question uniformly at random from categoryID
// (or every category for AllCategories), skipping ids in previous. It
// returns nil without error once the candidate set is exhausted.
func (s *TriviaService) NextQuizQuestion(categoryID uint, previous []uint) (*models.Question, error) {
	q := s.db.Model(&models.Question{})
	if categoryID != AllCategories {
		q = q.Where("category = ?", categoryID)
	}
	// NOT IN with an empty list matches nothing on some drivers.
	if len(previous) > 0 {
		q = q.Where("id NOT IN ?", previous)
	}

	var candidates []models.Question
	if err := q.Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, classify(err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	chosen := candidates[s.pick(len(candidates))]
	return &chosen, nil
}
