package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lshigami/examcraft/config"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/dto"
)

const verseBody = `{
	"code": 200,
	"status": "OK",
	"data": {
		"number": 1,
		"text": "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
		"edition": {"identifier": "quran-indopak", "language": "ar", "name": "IndoPak", "englishName": "IndoPak", "format": "text", "type": "quran", "direction": "rtl"},
		"surah": {"number": 1, "name": "الفاتحة", "englishName": "Al-Faatiha", "englishNameTranslation": "The Opening", "numberOfAyahs": 7, "revelationType": "Meccan"},
		"numberInSurah": 1, "juz": 1, "manzil": 1, "page": 1, "ruku": 1, "hizbQuarter": 1, "sajda": false
	}
}`

func newQuranTestService(t *testing.T, h http.HandlerFunc) (QuranService, *string) {
	t.Helper()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{Quran: config.Quran{BaseURL: srv.URL + "/v1/ayah", Edition: "quran-indopak", Timeout: 2 * time.Second}}
	return NewQuranService(cfg), &path
}

func TestVerse(t *testing.T) {
	svc, path := newQuranTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(verseBody))
	})

	verse, err := svc.Verse(context.Background(), dto.VerseRequest{Surah: 1, Verse: 1})
	if err != nil {
		t.Fatalf("verse: %v", err)
	}
	if *path != "/v1/ayah/1:1/quran-indopak" {
		t.Fatalf("unexpected request path %q", *path)
	}
	if verse.Surah.EnglishName != "Al-Faatiha" || verse.NumberInSurah != 1 || verse.Edition.Type != "quran" {
		t.Fatalf("unexpected verse: %+v", verse)
	}
}

func TestVerseNotFound(t *testing.T) {
	svc, _ := newQuranTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code": 404, "status": "NOT FOUND", "data": "Please specify an Ayah number (1 to 6236)."}`))
	})

	_, err := svc.Verse(context.Background(), dto.VerseRequest{Surah: 1, Verse: 99})
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVerseStringDataIsNotFound(t *testing.T) {
	svc, _ := newQuranTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 200, "status": "OK", "data": "Not found"}`))
	})

	_, err := svc.Verse(context.Background(), dto.VerseRequest{Surah: 2, Verse: 400})
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVerseUpstreamGarbage(t *testing.T) {
	svc, _ := newQuranTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := svc.Verse(context.Background(), dto.VerseRequest{Surah: 1, Verse: 1})
	if !apperror.Is(err, apperror.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
