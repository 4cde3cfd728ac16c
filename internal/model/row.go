package model

// SectionRow is one row of the exam → description → sections → questions → options
// outer join. Question and option columns are nil when the parent has no children.
type SectionRow struct {
	SectionID            int64
	SectionTitle         string
	SectionDescriptionID int64

	QuestionID          *int64
	QuestionText        *string
	QuestionDescription *string
	QuestionMarks       *int

	OptionID        *int64
	OptionText      *string
	OptionIsCorrect *bool
}

// EntityIDs is one (section, question, option) triple of an exam; zero means absent.
type EntityIDs struct {
	SectionID  int64
	QuestionID int64
	OptionID   int64
}
