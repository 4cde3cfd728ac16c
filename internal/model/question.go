package model

type Question struct {
	ID          int64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SectionID   int64    `gorm:"not null;index" json:"section_id"`
	Text        string   `gorm:"type:text;not null" json:"text"`
	Description *string  `gorm:"type:text" json:"description,omitempty"`
	Marks       int      `gorm:"not null" json:"marks"`
	Options     []Option `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
