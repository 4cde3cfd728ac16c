package dto

// ContextOptionsRequest asks for four options for a fill-in-the-blank question.
type ContextOptionsRequest struct {
	Question      string `json:"question" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
	Language      string `json:"language" binding:"required,oneof=arabic urdu"`
}

// QuranicOptionsRequest asks for Arabic distractors around a Quranic verse.
type QuranicOptionsRequest struct {
	Question      string `json:"question" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
}

type OptionsResponse struct {
	Responses []string `json:"responses"`
}

type BatchOptionsRequest struct {
	Items []ContextOptionsRequest `json:"items" binding:"required,min=1,max=20,dive"`
}

type BatchOptionsResult struct {
	Index     int      `json:"index"`
	Responses []string `json:"responses,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type BatchOptionsResponse struct {
	Results []BatchOptionsResult `json:"results"`
}
