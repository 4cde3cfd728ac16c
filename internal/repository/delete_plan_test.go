package repository

import (
	"context"
	"reflect"
	"testing"

	"github.com/lshigami/examcraft/internal/model"
)

// Section 1 holds questions 11 (options 111, 112) and 12 (no options);
// section 2 has no questions.
var snapshot = []model.EntityIDs{
	{SectionID: 1, QuestionID: 11, OptionID: 111},
	{SectionID: 1, QuestionID: 11, OptionID: 112},
	{SectionID: 1, QuestionID: 12},
	{SectionID: 2},
}

func TestExpandDeletion(t *testing.T) {
	tests := []struct {
		name        string
		req         model.IDSet
		want        model.IDSet
		wantDropped int
	}{
		{
			name: "section pulls in questions and options",
			req:  model.IDSet{SectionIDs: []int64{1}},
			want: model.IDSet{SectionIDs: []int64{1}, QuestionIDs: []int64{11, 12}, OptionIDs: []int64{111, 112}},
		},
		{
			name: "question pulls in its options only",
			req:  model.IDSet{QuestionIDs: []int64{11}},
			want: model.IDSet{SectionIDs: []int64{}, QuestionIDs: []int64{11}, OptionIDs: []int64{111, 112}},
		},
		{
			name: "single option",
			req:  model.IDSet{OptionIDs: []int64{112}},
			want: model.IDSet{SectionIDs: []int64{}, QuestionIDs: []int64{}, OptionIDs: []int64{112}},
		},
		{
			name: "overlapping request is deduplicated",
			req:  model.IDSet{SectionIDs: []int64{1, 1}, QuestionIDs: []int64{11}, OptionIDs: []int64{111}},
			want: model.IDSet{SectionIDs: []int64{1}, QuestionIDs: []int64{11, 12}, OptionIDs: []int64{111, 112}},
		},
		{
			name: "empty section",
			req:  model.IDSet{SectionIDs: []int64{2}},
			want: model.IDSet{SectionIDs: []int64{2}, QuestionIDs: []int64{}, OptionIDs: []int64{}},
		},
		{
			name:        "foreign ids are dropped",
			req:         model.IDSet{SectionIDs: []int64{99}, QuestionIDs: []int64{98, 12}, OptionIDs: []int64{97}},
			want:        model.IDSet{SectionIDs: []int64{}, QuestionIDs: []int64{12}, OptionIDs: []int64{}},
			wantDropped: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, dropped := expandDeletion(tc.req, snapshot)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
			if dropped != tc.wantDropped {
				t.Fatalf("expected %d dropped, got %d", tc.wantDropped, dropped)
			}
		})
	}
}

func TestExpandDeletionEmptySnapshot(t *testing.T) {
	got, dropped := expandDeletion(model.IDSet{SectionIDs: []int64{1}}, nil)
	if !got.IsEmpty() || dropped != 1 {
		t.Fatalf("expected nothing to delete, got %+v dropped=%d", got, dropped)
	}
}

// A repository without a database panics on any query, so these calls prove
// that empty requests return before a transaction is opened.
func TestEmptyRequestsSkipTransaction(t *testing.T) {
	repo := &examRepository{}
	ctx := context.Background()

	if err := repo.DeleteEntities(ctx, 1, model.IDSet{SectionIDs: []int64{}}); err != nil {
		t.Fatalf("empty deletion: %v", err)
	}
	if err := repo.Edit(ctx, &model.ExamEdit{ExamID: 1}); err != nil {
		t.Fatalf("empty edit: %v", err)
	}
}
