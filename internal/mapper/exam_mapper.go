package mapper

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/lshigami/examcraft/internal/model"
)

// FlattenExam turns a nested create request into parallel column arrays. Parent
// references left at zero are filled from the enclosing node. An explicit
// reference must name that same node: a child cannot point outside the
// submitted tree.
func FlattenExam(req dto.CreateExamRequest) (*model.ExamRows, error) {
	rows := &model.ExamRows{Exam: model.Exam{ID: req.ExamID}}

	if err := copier.Copy(&rows.Description, &req.Description); err != nil {
		return nil, apperror.Validation("invalid exam description: %v", err)
	}
	examID, err := parentID(rows.Description.ExamID, req.ExamID, "description", rows.Description.ID, "exam")
	if err != nil {
		return nil, err
	}
	rows.Description.ExamID = examID

	for _, s := range req.Sections {
		descID, err := parentID(s.DescriptionID, rows.Description.ID, "section", s.ID, "description")
		if err != nil {
			return nil, err
		}
		rows.Sections.IDs = append(rows.Sections.IDs, s.ID)
		rows.Sections.DescriptionIDs = append(rows.Sections.DescriptionIDs, descID)
		rows.Sections.Titles = append(rows.Sections.Titles, s.Title)

		for _, q := range s.Questions {
			sectionID, err := parentID(q.SectionID, s.ID, "question", q.ID, "section")
			if err != nil {
				return nil, err
			}
			rows.Questions.IDs = append(rows.Questions.IDs, q.ID)
			rows.Questions.SectionIDs = append(rows.Questions.SectionIDs, sectionID)
			rows.Questions.Texts = append(rows.Questions.Texts, q.Text)
			rows.Questions.Descriptions = append(rows.Questions.Descriptions, deref(q.Description))
			rows.Questions.Marks = append(rows.Questions.Marks, int64(q.Marks))

			for _, o := range q.Options {
				questionID, err := parentID(o.QuestionID, q.ID, "option", o.ID, "question")
				if err != nil {
					return nil, err
				}
				rows.Options.IDs = append(rows.Options.IDs, o.ID)
				rows.Options.QuestionIDs = append(rows.Options.QuestionIDs, questionID)
				rows.Options.Texts = append(rows.Options.Texts, o.Text)
				rows.Options.IsCorrect = append(rows.Options.IsCorrect, o.IsCorrect != nil && *o.IsCorrect)
			}
		}
	}
	return rows, nil
}

// EditColumns converts an edit request into batched update columns.
func EditColumns(req dto.EditExamRequest) *model.ExamEdit {
	edit := &model.ExamEdit{
		ExamID: req.ExamID,
		Delete: model.IDSet{
			SectionIDs:  req.Delete.SectionIDs,
			QuestionIDs: req.Delete.QuestionIDs,
			OptionIDs:   req.Delete.OptionIDs,
		},
	}
	for _, s := range req.Sections {
		edit.Sections.IDs = append(edit.Sections.IDs, s.ID)
		edit.Sections.Titles = append(edit.Sections.Titles, s.Title)
	}
	for _, q := range req.Questions {
		edit.Questions.IDs = append(edit.Questions.IDs, q.ID)
		edit.Questions.Texts = append(edit.Questions.Texts, q.Text)
		edit.Questions.Descriptions = append(edit.Questions.Descriptions, deref(q.Description))
		edit.Questions.Marks = append(edit.Questions.Marks, int64(q.Marks))
	}
	for _, o := range req.Options {
		edit.Options.IDs = append(edit.Options.IDs, o.ID)
		edit.Options.Texts = append(edit.Options.Texts, o.Text)
		edit.Options.IsCorrect = append(edit.Options.IsCorrect, o.IsCorrect != nil && *o.IsCorrect)
	}
	return edit
}

// parentID resolves a child's parent reference against the node it is nested in.
func parentID(given, enclosing int64, child string, childID int64, parent string) (int64, error) {
	if given == 0 || given == enclosing {
		return enclosing, nil
	}
	return 0, apperror.Validation("%s %d references %s %d, which is not its parent %d in the submitted tree",
		child, childID, parent, given, enclosing)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
