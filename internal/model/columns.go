package model

// The column types below hold one slice per table column; index i across the
// slices of one value describes row i. They feed UNNEST-based bulk statements.

type SectionColumns struct {
	IDs            []int64
	DescriptionIDs []int64
	Titles         []string
}

func (c *SectionColumns) Len() int { return len(c.IDs) }

type QuestionColumns struct {
	IDs          []int64
	SectionIDs   []int64
	Texts        []string
	Descriptions []string
	Marks        []int64
}

func (c *QuestionColumns) Len() int { return len(c.IDs) }

type OptionColumns struct {
	IDs         []int64
	QuestionIDs []int64
	Texts       []string
	IsCorrect   []bool
}

func (c *OptionColumns) Len() int { return len(c.IDs) }

// ExamRows is a flattened exam tree ready for a single insert transaction.
type ExamRows struct {
	Exam        Exam
	Description ExamDescription
	Sections    SectionColumns
	Questions   QuestionColumns
	Options     OptionColumns
}

// IDSet lists entity ids per table.
type IDSet struct {
	SectionIDs  []int64
	QuestionIDs []int64
	OptionIDs   []int64
}

func (s IDSet) IsEmpty() bool {
	return len(s.SectionIDs) == 0 && len(s.QuestionIDs) == 0 && len(s.OptionIDs) == 0
}

// ExamEdit is a batch of field updates plus deletions scoped to one exam. The
// parent-id columns of the embedded column types are unused.
type ExamEdit struct {
	ExamID    int64
	Sections  SectionColumns
	Questions QuestionColumns
	Options   OptionColumns
	Delete    IDSet
}

func (e *ExamEdit) IsEmpty() bool {
	return e.Sections.Len() == 0 && e.Questions.Len() == 0 && e.Options.Len() == 0 && e.Delete.IsEmpty()
}

// ExamTree is the raw material of a hierarchical read: the root, its description
// and the flat join rows.
type ExamTree struct {
	Exam        Exam
	Description ExamDescription
	Rows        []SectionRow
}
