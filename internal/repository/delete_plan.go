package repository

import (
	"slices"

	"github.com/lshigami/examcraft/internal/model"
)

// expandDeletion filters the requested ids down to entities present in the
// snapshot, then adds every question of a deleted section and every option of a
// deleted question. Only the snapshot decides parent/child relationships. The
// second result counts requested ids that were not part of the snapshot.
func expandDeletion(req model.IDSet, snapshot []model.EntityIDs) (model.IDSet, int) {
	sections := make(map[int64]bool)
	questions := make(map[int64]bool)
	options := make(map[int64]bool)
	questionsBySection := make(map[int64][]int64)
	optionsByQuestion := make(map[int64][]int64)

	for _, row := range snapshot {
		sections[row.SectionID] = true
		if row.QuestionID == 0 {
			continue
		}
		if !questions[row.QuestionID] {
			questions[row.QuestionID] = true
			questionsBySection[row.SectionID] = append(questionsBySection[row.SectionID], row.QuestionID)
		}
		if row.OptionID == 0 || options[row.OptionID] {
			continue
		}
		options[row.OptionID] = true
		optionsByQuestion[row.QuestionID] = append(optionsByQuestion[row.QuestionID], row.OptionID)
	}

	dropped := 0
	delSections := make(map[int64]bool)
	delQuestions := make(map[int64]bool)
	delOptions := make(map[int64]bool)

	for _, id := range req.SectionIDs {
		if !sections[id] {
			dropped++
			continue
		}
		delSections[id] = true
		for _, qid := range questionsBySection[id] {
			delQuestions[qid] = true
		}
	}
	for _, id := range req.QuestionIDs {
		if !questions[id] {
			dropped++
			continue
		}
		delQuestions[id] = true
	}
	for qid := range delQuestions {
		for _, oid := range optionsByQuestion[qid] {
			delOptions[oid] = true
		}
	}
	for _, id := range req.OptionIDs {
		if !options[id] {
			dropped++
			continue
		}
		delOptions[id] = true
	}

	return model.IDSet{
		SectionIDs:  sortedKeys(delSections),
		QuestionIDs: sortedKeys(delQuestions),
		OptionIDs:   sortedKeys(delOptions),
	}, dropped
}

func sortedKeys(m map[int64]bool) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
