package model

// Exam is the identity-only root of an exam tree. IDs are supplied by the caller.
type Exam struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Description ExamDescription `gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// ExamDescription holds the exam metadata, one per exam.
type ExamDescription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ExamID       int64     `gorm:"not null;uniqueIndex" json:"exam_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	Duration     int       `gorm:"not null" json:"duration"`
	PassingScore int       `gorm:"not null" json:"passing_score"`
	Sections     []Section `gorm:"foreignKey:DescriptionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (ExamDescription) TableName() string {
	return "exam_descriptions"
}
