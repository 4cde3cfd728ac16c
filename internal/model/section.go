package model

type Section struct {
	ID            int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	DescriptionID int64      `gorm:"not null;index" json:"description_id"`
	Title         string     `gorm:"not null" json:"title"`
	Questions     []Question `gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
