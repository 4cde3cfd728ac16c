package model

type Option struct {
	ID         int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	QuestionID int64  `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  *bool  `gorm:"default:false" json:"is_correct,omitempty"`
}
