package mapper

import (
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/lshigami/examcraft/internal/model"
)

// RegroupSections rebuilds the nested section list from outer-join rows in one
// pass. Sections and questions appear once each, in the order they are first
// seen; a nil question id leaves the section empty and a nil option id leaves the
// question empty.
func RegroupSections(rows []model.SectionRow) []dto.SectionResponse {
	sections := make([]dto.SectionResponse, 0)
	sectionIdx := make(map[int64]int)
	questionIdx := make(map[int64]map[int64]int)

	for _, row := range rows {
		si, ok := sectionIdx[row.SectionID]
		if !ok {
			si = len(sections)
			sectionIdx[row.SectionID] = si
			questionIdx[row.SectionID] = make(map[int64]int)
			sections = append(sections, dto.SectionResponse{
				ID:            row.SectionID,
				DescriptionID: row.SectionDescriptionID,
				Title:         row.SectionTitle,
				Questions:     make([]dto.QuestionResponse, 0),
			})
		}
		if row.QuestionID == nil {
			continue
		}

		section := &sections[si]
		qi, ok := questionIdx[row.SectionID][*row.QuestionID]
		if !ok {
			qi = len(section.Questions)
			questionIdx[row.SectionID][*row.QuestionID] = qi
			section.Questions = append(section.Questions, dto.QuestionResponse{
				ID:          *row.QuestionID,
				SectionID:   row.SectionID,
				Text:        deref(row.QuestionText),
				Description: deref(row.QuestionDescription),
				Marks:       deref(row.QuestionMarks),
				Options:     make([]dto.OptionResponse, 0),
			})
		}
		if row.OptionID == nil {
			continue
		}

		question := &section.Questions[qi]
		question.Options = append(question.Options, dto.OptionResponse{
			ID:         *row.OptionID,
			QuestionID: *row.QuestionID,
			Text:       deref(row.OptionText),
			IsCorrect:  deref(row.OptionIsCorrect),
		})
	}
	return sections
}

// ExamResponse assembles the full response from a hierarchical read.
func ExamResponse(tree *model.ExamTree) *dto.ExamResponse {
	d := tree.Description
	return &dto.ExamResponse{
		ExamID: tree.Exam.ID,
		Description: dto.DescriptionResponse{
			ID:           d.ID,
			ExamID:       d.ExamID,
			Title:        d.Title,
			Description:  deref(d.Description),
			Duration:     d.Duration,
			PassingScore: d.PassingScore,
		},
		Sections: RegroupSections(tree.Rows),
	}
}
