package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/dto"
)

type sampleRequest struct {
	Title string       `json:"title" binding:"required"`
	Items []sampleItem `json:"items" binding:"dive"`
}

type sampleItem struct {
	Marks int `json:"marks" binding:"gte=0"`
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestBindJSONReportsFieldPaths(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/", `{"items": [{"marks": -1}]}`)
	var req sampleRequest
	if BindJSON(c, &req) {
		t.Fatal("expected bind to fail")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decode(t, rec)
	if !strings.Contains(body.Message, "Title: required") || !strings.Contains(body.Message, "Items[0].Marks: gte=0") {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestBindJSONMalformed(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/", `{"title":`)
	var req sampleRequest
	if BindJSON(c, &req) {
		t.Fatal("expected bind to fail")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/", "")
	WriteError(c, apperror.Storage(errors.New("pq: connection refused"), "find exam"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body.Error != "Internal Server Error" || strings.Contains(body.Message, "connection refused") {
		t.Fatalf("internal detail leaked: %+v", body)
	}
}

func TestPathID(t *testing.T) {
	cases := map[string]bool{"42": true, "0": false, "-3": false, "abc": false}
	for raw, ok := range cases {
		c, rec := newContext(http.MethodGet, "/", "")
		c.Params = gin.Params{{Key: "exam_id", Value: raw}}
		id, got := PathID(c, "exam_id")
		if got != ok {
			t.Fatalf("%q: expected ok=%v", raw, ok)
		}
		if ok && id != 42 {
			t.Fatalf("expected 42, got %d", id)
		}
		if !ok && rec.Code != http.StatusBadRequest {
			t.Fatalf("%q: expected 400, got %d", raw, rec.Code)
		}
	}
}
