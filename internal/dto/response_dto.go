package dto

// ExamResponse is the fully materialised exam tree.
type ExamResponse struct {
	ExamID      int64               `json:"exam_id"`
	Description DescriptionResponse `json:"description"`
	Sections    []SectionResponse   `json:"sections"`
}

type DescriptionResponse struct {
	ID           int64  `json:"id"`
	ExamID       int64  `json:"exam_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     int    `json:"duration"`
	PassingScore int    `json:"passing_score"`
}

type SectionResponse struct {
	ID            int64              `json:"id"`
	DescriptionID int64              `json:"description_id"`
	Title         string             `json:"title"`
	Questions     []QuestionResponse `json:"questions"`
}

type QuestionResponse struct {
	ID          int64            `json:"id"`
	SectionID   int64            `json:"section_id"`
	Text        string           `json:"text"`
	Description string           `json:"description"`
	Marks       int              `json:"marks"`
	Options     []OptionResponse `json:"options"`
}

type OptionResponse struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
}

type ExamIDResponse struct {
	ID int64 `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"invalid exam id"`
}
