package exam

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/dto"
)

type mockExamService struct {
	createFn func(ctx context.Context, req dto.CreateExamRequest) (int64, error)
	getFn    func(ctx context.Context, examID int64) (*dto.ExamResponse, error)
	editFn   func(ctx context.Context, req dto.EditExamRequest) error
	deleteFn func(ctx context.Context, examID int64) error

	deleteEntitiesFn func(ctx context.Context, examID int64, req dto.DeleteIdsRequest) error
}

func (m *mockExamService) CreateExam(ctx context.Context, req dto.CreateExamRequest) (int64, error) {
	if m.createFn == nil {
		return 0, errors.New("not implemented")
	}
	return m.createFn(ctx, req)
}

func (m *mockExamService) GetExam(ctx context.Context, examID int64) (*dto.ExamResponse, error) {
	if m.getFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.getFn(ctx, examID)
}

func (m *mockExamService) EditExam(ctx context.Context, req dto.EditExamRequest) error {
	if m.editFn == nil {
		return errors.New("not implemented")
	}
	return m.editFn(ctx, req)
}

func (m *mockExamService) DeleteExam(ctx context.Context, examID int64) error {
	if m.deleteFn == nil {
		return errors.New("not implemented")
	}
	return m.deleteFn(ctx, examID)
}

func (m *mockExamService) DeleteEntities(ctx context.Context, examID int64, req dto.DeleteIdsRequest) error {
	if m.deleteEntitiesFn == nil {
		return errors.New("not implemented")
	}
	return m.deleteEntitiesFn(ctx, examID, req)
}

func newRouter(svc *mockExamService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewExamController(svc).RegisterRoutes(r)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return body
}

const mathQuizBody = `{
	"exam_id": 1,
	"description": {"id": 10, "exam_id": 1, "title": "Math Quiz", "duration": 30, "passing_score": 50},
	"sections": [{
		"id": 100, "title": "Arithmetic",
		"questions": [{
			"id": 1000, "text": "2+2?", "marks": 1,
			"options": [{"id": 5000, "text": "4", "is_correct": true}, {"id": 5001, "text": "5"}]
		}]
	}]
}`

func TestCreateExamHandler(t *testing.T) {
	var got dto.CreateExamRequest
	svc := &mockExamService{
		createFn: func(ctx context.Context, req dto.CreateExamRequest) (int64, error) {
			got = req
			return req.ExamID, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/exam/create", bytes.NewBufferString(mathQuizBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var body dto.ExamIDResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.ID != 1 {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	opts := got.Sections[0].Questions[0].Options
	if len(opts) != 2 || opts[0].IsCorrect == nil || !*opts[0].IsCorrect || opts[1].IsCorrect != nil {
		t.Fatalf("options not bound as expected: %+v", opts)
	}
}

func TestCreateExamHandlerInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"exam_id": `},
		{name: "missing exam id", body: `{"description": {"id": 10, "title": "x"}}`},
		{name: "option without text", body: `{"exam_id": 1, "description": {"id": 10, "title": "x"}, "sections": [{"id": 1, "title": "s", "questions": [{"id": 2, "text": "q", "options": [{"id": 3}]}]}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockExamService{}
			req := httptest.NewRequest(http.MethodPost, "/exam/create", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if body := decodeError(t, rec); body.Error != "Bad Request" || body.Message == "" {
				t.Fatalf("unexpected error body: %+v", body)
			}
		})
	}
}

func TestGetExamHandler(t *testing.T) {
	svc := &mockExamService{
		getFn: func(ctx context.Context, examID int64) (*dto.ExamResponse, error) {
			if examID != 1 {
				return nil, apperror.NotFound("exam %d not found", examID)
			}
			return &dto.ExamResponse{
				ExamID:      1,
				Description: dto.DescriptionResponse{ID: 10, ExamID: 1, Title: "Math Quiz"},
				Sections:    []dto.SectionResponse{},
			}, nil
		},
	}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exam/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["exam_id"] != float64(1) {
		t.Fatalf("unexpected exam_id: %v", body["exam_id"])
	}
	if sections, ok := body["sections"].([]any); !ok || len(sections) != 0 {
		t.Fatalf("expected empty sections array, got %v", body["sections"])
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exam/2", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error != "Not Found" || body.Message != "exam 2 not found" {
		t.Fatalf("unexpected error body: %+v", body)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exam/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}
}

func TestGetExamHandlerHidesStorageDetails(t *testing.T) {
	svc := &mockExamService{
		getFn: func(ctx context.Context, examID int64) (*dto.ExamResponse, error) {
			return nil, apperror.Storage(errors.New("dial tcp 10.0.0.5:5432: connection refused"), "failed to fetch exam id")
		},
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exam/1", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body.Error != "Internal Server Error" || bytes.Contains(rec.Body.Bytes(), []byte("10.0.0.5")) {
		t.Fatalf("storage details leaked: %s", rec.Body.String())
	}
}

func TestEditExamHandler(t *testing.T) {
	var got dto.EditExamRequest
	svc := &mockExamService{
		editFn: func(ctx context.Context, req dto.EditExamRequest) error {
			got = req
			return nil
		},
	}

	body := `{"exam_id": 1, "sections": [{"id": 100, "title": "Renamed"}], "delete": {"question_ids": [1000]}}`
	req := httptest.NewRequest(http.MethodPut, "/exam/edit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if got.ExamID != 1 || got.Sections[0].Title != "Renamed" || got.Delete.QuestionIDs[0] != 1000 {
		t.Fatalf("unexpected edit request: %+v", got)
	}
}

func TestDeleteExamHandler(t *testing.T) {
	svc := &mockExamService{
		deleteFn: func(ctx context.Context, examID int64) error { return nil },
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/exam/delete/7", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body dto.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Message != "Exam 7 deleted successfully" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestDeleteEntitiesHandler(t *testing.T) {
	var gotExam int64
	var got dto.DeleteIdsRequest
	svc := &mockExamService{
		deleteEntitiesFn: func(ctx context.Context, examID int64, req dto.DeleteIdsRequest) error {
			gotExam, got = examID, req
			return nil
		},
	}

	body := `{"section_ids": [100], "option_ids": [5000, 5001]}`
	req := httptest.NewRequest(http.MethodPost, "/exam/delete/7/entities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if gotExam != 7 || len(got.SectionIDs) != 1 || len(got.OptionIDs) != 2 || got.QuestionIDs != nil {
		t.Fatalf("unexpected delete request: exam=%d %+v", gotExam, got)
	}

	req = httptest.NewRequest(http.MethodPost, "/exam/delete/abc/entities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad exam id, got %d", rec.Code)
	}
}
