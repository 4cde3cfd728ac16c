package service

import (
	"context"
	"errors"

	"github.com/lshigami/examcraft/internal/cache"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/lshigami/examcraft/internal/mapper"
	"github.com/lshigami/examcraft/internal/model"
	"github.com/lshigami/examcraft/internal/repository"
	"github.com/rs/zerolog/log"
)

type ExamService interface {
	CreateExam(ctx context.Context, req dto.CreateExamRequest) (int64, error)
	GetExam(ctx context.Context, examID int64) (*dto.ExamResponse, error)
	EditExam(ctx context.Context, req dto.EditExamRequest) error
	DeleteExam(ctx context.Context, examID int64) error
	DeleteEntities(ctx context.Context, examID int64, req dto.DeleteIdsRequest) error
}

type examService struct {
	examRepo repository.ExamRepository
	cache    cache.ExamCache
}

func NewExamService(examRepo repository.ExamRepository, examCache cache.ExamCache) ExamService {
	return &examService{examRepo: examRepo, cache: examCache}
}

func (s *examService) CreateExam(ctx context.Context, req dto.CreateExamRequest) (int64, error) {
	rows, err := mapper.FlattenExam(req)
	if err != nil {
		log.Warn().Err(err).Int64("exam_id", req.ExamID).Msg("Rejected exam payload")
		return 0, err
	}
	id, err := s.examRepo.Create(ctx, rows)
	if err != nil {
		log.Error().Err(err).Int64("exam_id", req.ExamID).Msg("Failed to create exam")
		return 0, err
	}
	// A stale entry can exist when the id was used by an exam deleted while Redis was unreachable.
	s.invalidate(ctx, id)
	return id, nil
}

// GetExam serves from the cache when possible and fills it on a miss.
func (s *examService) GetExam(ctx context.Context, examID int64) (*dto.ExamResponse, error) {
	if cached, ok, err := s.cache.Get(ctx, examID); err != nil {
		log.Warn().Err(err).Int64("exam_id", examID).Msg("Exam cache read failed")
	} else if ok {
		log.Debug().Int64("exam_id", examID).Msg("Exam served from cache")
		return cached, nil
	}

	version, versionErr := s.cache.Version(ctx, examID)
	if versionErr != nil {
		log.Warn().Err(versionErr).Int64("exam_id", examID).Msg("Exam cache version read failed, skipping fill")
	}

	tree, err := s.examRepo.FindTree(ctx, examID)
	if err != nil {
		return nil, err
	}
	resp := mapper.ExamResponse(tree)

	if versionErr == nil {
		s.fill(ctx, resp, version)
	}
	return resp, nil
}

func (s *examService) fill(ctx context.Context, resp *dto.ExamResponse, version int64) {
	err := s.cache.Put(ctx, resp, version)
	switch {
	case errors.Is(err, cache.ErrStale):
		log.Debug().Int64("exam_id", resp.ExamID).Msg("Exam changed during read, cache fill skipped")
	case err != nil:
		log.Warn().Err(err).Int64("exam_id", resp.ExamID).Msg("Exam cache write failed")
	}
}

func (s *examService) EditExam(ctx context.Context, req dto.EditExamRequest) error {
	if req.IsEmpty() {
		log.Debug().Int64("exam_id", req.ExamID).Msg("Empty edit, nothing to do")
		return nil
	}
	if err := s.examRepo.Edit(ctx, mapper.EditColumns(req)); err != nil {
		log.Error().Err(err).Int64("exam_id", req.ExamID).Msg("Failed to edit exam")
		return err
	}
	s.invalidate(ctx, req.ExamID)
	return nil
}

func (s *examService) DeleteExam(ctx context.Context, examID int64) error {
	if err := s.examRepo.Delete(ctx, examID); err != nil {
		log.Error().Err(err).Int64("exam_id", examID).Msg("Failed to delete exam")
		return err
	}
	s.invalidate(ctx, examID)
	return nil
}

// DeleteEntities removes the listed sections, questions and options of one exam
// together with their descendants.
func (s *examService) DeleteEntities(ctx context.Context, examID int64, req dto.DeleteIdsRequest) error {
	if req.IsAllEmpty() {
		log.Debug().Int64("exam_id", examID).Msg("Empty deletion, nothing to do")
		return nil
	}
	ids := model.IDSet{SectionIDs: req.SectionIDs, QuestionIDs: req.QuestionIDs, OptionIDs: req.OptionIDs}
	if err := s.examRepo.DeleteEntities(ctx, examID, ids); err != nil {
		log.Error().Err(err).Int64("exam_id", examID).Msg("Failed to delete exam entities")
		return err
	}
	s.invalidate(ctx, examID)
	return nil
}

func (s *examService) invalidate(ctx context.Context, examID int64) {
	if err := s.cache.Invalidate(ctx, examID); err != nil {
		log.Warn().Err(err).Int64("exam_id", examID).Msg("Exam cache invalidation failed")
	}
}
