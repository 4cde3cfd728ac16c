package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lshigami/examcraft/internal/dto"
	"github.com/redis/go-redis/v9"
)

// ExamCache stores fully assembled exam trees.
//
// Every invalidation bumps a per-exam version. A reader takes the version before
// loading from the database and passes it to Put, which refuses to write once
// the version has moved on, so a fill racing an edit cannot resurrect the old tree.
type ExamCache interface {
	Get(ctx context.Context, examID int64) (*dto.ExamResponse, bool, error)
	Version(ctx context.Context, examID int64) (int64, error)
	Put(ctx context.Context, exam *dto.ExamResponse, version int64) error
	Invalidate(ctx context.Context, examID int64) error
}

// ErrStale is returned by Put when the exam was invalidated after the version
// was read.
var ErrStale = errors.New("exam cache: version changed since read")

// versionTTL outlives any read-then-fill window by a wide margin.
const versionTTL = 24 * time.Hour

func ExamKey(examID int64) string {
	return "exam:" + strconv.FormatInt(examID, 10)
}

func VersionKey(examID int64) string {
	return ExamKey(examID) + ":version"
}

func QuestionKey(examID, questionID int64) string {
	return fmt.Sprintf("exam:%d:question:%d", examID, questionID)
}

// examHash is the exam:{id} record. Sections and question ids are JSON encoded so
// their order survives the round trip.
type examHash struct {
	ExamID        int64  `redis:"exam_id"`
	DescriptionID int64  `redis:"description_id"`
	Title         string `redis:"title"`
	Description   string `redis:"description"`
	Duration      int    `redis:"duration"`
	PassingScore  int    `redis:"passing_score"`
	Sections      string `redis:"sections"`
	QuestionIDs   string `redis:"question_ids"`
}

type sectionEntry struct {
	ID            int64   `json:"id"`
	DescriptionID int64   `json:"description_id"`
	Title         string  `json:"title"`
	QuestionIDs   []int64 `json:"question_ids"`
}

// questionHash is the exam:{id}:question:{qid} record.
type questionHash struct {
	SectionID     int64  `redis:"section_id"`
	Text          string `redis:"text"`
	Description   string `redis:"description"`
	Marks         int    `redis:"marks"`
	Options       string `redis:"options"`
	CorrectOption string `redis:"correct_option"`
}

type redisExamCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisExamCache builds the Redis cache. A non-positive ttl stores entries
// without expiry.
func NewRedisExamCache(rdb *redis.Client, ttl time.Duration) ExamCache {
	return &redisExamCache{rdb: rdb, ttl: ttl}
}

func (c *redisExamCache) Version(ctx context.Context, examID int64) (int64, error) {
	v, err := c.rdb.Get(ctx, VersionKey(examID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read exam cache version: %w", err)
	}
	return v, nil
}

// Get returns the cached tree. A missing exam hash or any missing question hash
// is reported as a miss.
func (c *redisExamCache) Get(ctx context.Context, examID int64) (*dto.ExamResponse, bool, error) {
	cmd := c.rdb.HGetAll(ctx, ExamKey(examID))
	if err := cmd.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read exam hash: %w", err)
	}
	if len(cmd.Val()) == 0 {
		return nil, false, nil
	}
	var eh examHash
	if err := cmd.Scan(&eh); err != nil {
		return nil, false, fmt.Errorf("failed to decode exam hash: %w", err)
	}
	var sections []sectionEntry
	if err := json.Unmarshal([]byte(eh.Sections), &sections); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached sections: %w", err)
	}

	pipe := c.rdb.Pipeline()
	questionCmds := make(map[int64]*redis.MapStringStringCmd)
	for _, s := range sections {
		for _, qid := range s.QuestionIDs {
			questionCmds[qid] = pipe.HGetAll(ctx, QuestionKey(examID, qid))
		}
	}
	if len(questionCmds) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, false, fmt.Errorf("failed to read question hashes: %w", err)
		}
	}

	exam := &dto.ExamResponse{
		ExamID: eh.ExamID,
		Description: dto.DescriptionResponse{
			ID:           eh.DescriptionID,
			ExamID:       eh.ExamID,
			Title:        eh.Title,
			Description:  eh.Description,
			Duration:     eh.Duration,
			PassingScore: eh.PassingScore,
		},
		Sections: make([]dto.SectionResponse, 0, len(sections)),
	}
	for _, s := range sections {
		section := dto.SectionResponse{
			ID:            s.ID,
			DescriptionID: s.DescriptionID,
			Title:         s.Title,
			Questions:     make([]dto.QuestionResponse, 0, len(s.QuestionIDs)),
		}
		for _, qid := range s.QuestionIDs {
			qcmd := questionCmds[qid]
			if len(qcmd.Val()) == 0 {
				return nil, false, nil
			}
			var qh questionHash
			if err := qcmd.Scan(&qh); err != nil {
				return nil, false, fmt.Errorf("failed to decode question hash: %w", err)
			}
			options := make([]dto.OptionResponse, 0)
			if err := json.Unmarshal([]byte(qh.Options), &options); err != nil {
				return nil, false, fmt.Errorf("failed to decode cached options: %w", err)
			}
			section.Questions = append(section.Questions, dto.QuestionResponse{
				ID:          qid,
				SectionID:   qh.SectionID,
				Text:        qh.Text,
				Description: qh.Description,
				Marks:       qh.Marks,
				Options:     options,
			})
		}
		exam.Sections = append(exam.Sections, section)
	}
	return exam, true, nil
}

// Put writes the exam hash and one hash per question in a single MULTI/EXEC,
// guarded by a WATCH on the version key. It returns ErrStale without writing
// when the version no longer matches.
func (c *redisExamCache) Put(ctx context.Context, exam *dto.ExamResponse, version int64) error {
	sections := make([]sectionEntry, 0, len(exam.Sections))
	questionIDs := make([]int64, 0)
	for _, s := range exam.Sections {
		entry := sectionEntry{ID: s.ID, DescriptionID: s.DescriptionID, Title: s.Title, QuestionIDs: make([]int64, 0, len(s.Questions))}
		for _, q := range s.Questions {
			entry.QuestionIDs = append(entry.QuestionIDs, q.ID)
			questionIDs = append(questionIDs, q.ID)
		}
		sections = append(sections, entry)
	}
	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return err
	}
	questionIDsJSON, err := json.Marshal(questionIDs)
	if err != nil {
		return err
	}

	examKey := ExamKey(exam.ExamID)
	versionKey := VersionKey(exam.ExamID)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return c.writeExam(ctx, pipe, exam, examKey, sectionsJSON, questionIDsJSON)
		})
		return err
	}, versionKey)
	if errors.Is(err, ErrStale) || errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("failed to cache exam %d: %w", exam.ExamID, err)
	}
	return nil
}

func (c *redisExamCache) writeExam(ctx context.Context, pipe redis.Pipeliner, exam *dto.ExamResponse, examKey string, sectionsJSON, questionIDsJSON []byte) error {
	pipe.Del(ctx, examKey)
	pipe.HSet(ctx, examKey, examHash{
		ExamID:        exam.ExamID,
		DescriptionID: exam.Description.ID,
		Title:         exam.Description.Title,
		Description:   exam.Description.Description,
		Duration:      exam.Description.Duration,
		PassingScore:  exam.Description.PassingScore,
		Sections:      string(sectionsJSON),
		QuestionIDs:   string(questionIDsJSON),
	})
	c.expire(ctx, pipe, examKey)

	for _, s := range exam.Sections {
		for _, q := range s.Questions {
			optionsJSON, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			key := QuestionKey(exam.ExamID, q.ID)
			pipe.Del(ctx, key)
			pipe.HSet(ctx, key, questionHash{
				SectionID:     q.SectionID,
				Text:          q.Text,
				Description:   q.Description,
				Marks:         q.Marks,
				Options:       string(optionsJSON),
				CorrectOption: correctOption(q.Options),
			})
			c.expire(ctx, pipe, key)
		}
	}
	return nil
}

func (c *redisExamCache) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}
}

// Invalidate drops the exam hash and every question hash it lists, and bumps
// the exam version so in-flight fills are discarded.
func (c *redisExamCache) Invalidate(ctx context.Context, examID int64) error {
	examKey := ExamKey(examID)
	raw, err := c.rdb.HGet(ctx, examKey, "question_ids").Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read cached question ids: %w", err)
	}

	keys := []string{examKey}
	if raw != "" {
		var questionIDs []int64
		if err := json.Unmarshal([]byte(raw), &questionIDs); err != nil {
			return fmt.Errorf("failed to decode cached question ids: %w", err)
		}
		for _, qid := range questionIDs {
			keys = append(keys, QuestionKey(examID, qid))
		}
	}
	versionKey := VersionKey(examID)
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, versionTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate exam %d: %w", examID, err)
	}
	return nil
}

func correctOption(options []dto.OptionResponse) string {
	for _, o := range options {
		if o.IsCorrect {
			return o.Text
		}
	}
	return ""
}

type noopExamCache struct{}

// NewNoopExamCache returns a cache that never hits and never fails.
func NewNoopExamCache() ExamCache { return noopExamCache{} }

func (noopExamCache) Get(context.Context, int64) (*dto.ExamResponse, bool, error) {
	return nil, false, nil
}

func (noopExamCache) Version(context.Context, int64) (int64, error) { return 0, nil }

func (noopExamCache) Put(context.Context, *dto.ExamResponse, int64) error { return nil }

func (noopExamCache) Invalidate(context.Context, int64) error { return nil }
