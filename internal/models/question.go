package models

type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`

	CategoryRef *Category `gorm:"foreignKey:Category;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// QuestionView is the wire representation of a question.
type QuestionView struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (q Question) Format() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []QuestionView {
	out := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}
