package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lshigami/examcraft/config"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/rs/zerolog/log"
)

type QuranService interface {
	Verse(ctx context.Context, req dto.VerseRequest) (*dto.VerseResponse, error)
}

type quranService struct {
	baseURL string
	edition string
	client  *http.Client
}

func NewQuranService(cfg *config.Config) QuranService {
	return &quranService{
		baseURL: cfg.Quran.BaseURL,
		edition: cfg.Quran.Edition,
		client:  &http.Client{Timeout: cfg.Quran.Timeout},
	}
}

// quranAPIResponse is the envelope of the verse API. Data is a verse object on
// success and a plain message string otherwise.
type quranAPIResponse struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func (s *quranService) Verse(ctx context.Context, req dto.VerseRequest) (*dto.VerseResponse, error) {
	url := fmt.Sprintf("%s/%d:%d", s.baseURL, req.Surah, req.Verse)
	if s.edition != "" {
		url += "/" + s.edition
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.Upstream(err, "failed to build verse request")
	}
	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Verse API request failed")
		return nil, apperror.Upstream(err, "failed to reach the verse API")
	}
	defer resp.Body.Close()

	var envelope quranAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperror.Upstream(err, "failed to decode verse API response (status %d)", resp.StatusCode)
	}

	data := bytes.TrimSpace(envelope.Data)
	if envelope.Code != http.StatusOK || len(data) == 0 || data[0] == '"' {
		var msg string
		_ = json.Unmarshal(data, &msg)
		log.Debug().Int("code", envelope.Code).Str("message", msg).Int("surah", req.Surah).Int("verse", req.Verse).Msg("Verse not found")
		return nil, apperror.NotFound("verse %d:%d not found", req.Surah, req.Verse)
	}

	var verse dto.VerseResponse
	if err := json.Unmarshal(data, &verse); err != nil {
		return nil, apperror.Upstream(err, "failed to decode verse data")
	}
	return &verse, nil
}
