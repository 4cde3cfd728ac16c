package dto

// CreateExamRequest is the full exam tree submitted to /exam/create. Every node
// carries a caller-supplied ID; parent references may be omitted and then default
// to the enclosing node.
type CreateExamRequest struct {
	ExamID      int64              `json:"exam_id" binding:"required"`
	Description DescriptionRequest `json:"description"`
	Sections    []SectionRequest   `json:"sections" binding:"dive"`
}

type DescriptionRequest struct {
	ID           int64   `json:"id" binding:"required"`
	ExamID       int64   `json:"exam_id"`
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description"`
	Duration     int     `json:"duration" binding:"gte=0"`
	PassingScore int     `json:"passing_score" binding:"gte=0"`
}

type SectionRequest struct {
	ID            int64             `json:"id" binding:"required"`
	DescriptionID int64             `json:"description_id"`
	Title         string            `json:"title" binding:"required"`
	Questions     []QuestionRequest `json:"questions" binding:"dive"`
}

type QuestionRequest struct {
	ID          int64           `json:"id" binding:"required"`
	SectionID   int64           `json:"section_id"`
	Text        string          `json:"text" binding:"required"`
	Description *string         `json:"description"`
	Marks       int             `json:"marks" binding:"gte=0"`
	Options     []OptionRequest `json:"options" binding:"dive"`
}

type OptionRequest struct {
	ID         int64  `json:"id" binding:"required"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text" binding:"required"`
	IsCorrect  *bool  `json:"is_correct"`
}

// EditExamRequest carries field-level edits and deletions for one exam. Structural
// additions are not supported here; create a new exam tree instead.
type EditExamRequest struct {
	ExamID    int64            `json:"exam_id" binding:"required"`
	Sections  []SectionEdit    `json:"sections" binding:"dive"`
	Questions []QuestionEdit   `json:"questions" binding:"dive"`
	Options   []OptionEdit     `json:"options" binding:"dive"`
	Delete    DeleteIdsRequest `json:"delete"`
}

type SectionEdit struct {
	ID    int64  `json:"id" binding:"required"`
	Title string `json:"title" binding:"required"`
}

type QuestionEdit struct {
	ID          int64   `json:"id" binding:"required"`
	Text        string  `json:"text" binding:"required"`
	Description *string `json:"description"`
	Marks       int     `json:"marks" binding:"gte=0"`
}

type OptionEdit struct {
	ID        int64  `json:"id" binding:"required"`
	Text      string `json:"text" binding:"required"`
	IsCorrect *bool  `json:"is_correct"`
}

type DeleteIdsRequest struct {
	SectionIDs  []int64 `json:"section_ids"`
	QuestionIDs []int64 `json:"question_ids"`
	OptionIDs   []int64 `json:"option_ids"`
}

func (d DeleteIdsRequest) IsAllEmpty() bool {
	return len(d.SectionIDs) == 0 && len(d.QuestionIDs) == 0 && len(d.OptionIDs) == 0
}

// IsEmpty reports whether the edit would touch no rows at all.
func (e EditExamRequest) IsEmpty() bool {
	return len(e.Sections) == 0 && len(e.Questions) == 0 && len(e.Options) == 0 && e.Delete.IsAllEmpty()
}
