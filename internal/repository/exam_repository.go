package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExamRepository interface {
	Create(ctx context.Context, rows *model.ExamRows) (int64, error)
	FindTree(ctx context.Context, examID int64) (*model.ExamTree, error)
	Delete(ctx context.Context, examID int64) error
	DeleteEntities(ctx context.Context, examID int64, ids model.IDSet) error
	Edit(ctx context.Context, edit *model.ExamEdit) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

const (
	insertSectionsSQL = `
		INSERT INTO sections (id, description_id, title)
		SELECT * FROM UNNEST(?::bigint[], ?::bigint[], ?::text[])
		ON CONFLICT (id) DO NOTHING`

	insertQuestionsSQL = `
		INSERT INTO questions (id, section_id, text, description, marks)
		SELECT * FROM UNNEST(?::bigint[], ?::bigint[], ?::text[], ?::text[], ?::bigint[])
		ON CONFLICT (id) DO NOTHING`

	insertOptionsSQL = `
		INSERT INTO options (id, question_id, text, is_correct)
		SELECT * FROM UNNEST(?::bigint[], ?::bigint[], ?::text[], ?::bool[])
		ON CONFLICT (id) DO NOTHING`

	selectTreeRowsSQL = `
		SELECT
			s.id AS section_id,
			s.title AS section_title,
			s.description_id AS section_description_id,
			q.id AS question_id,
			q.text AS question_text,
			q.description AS question_description,
			q.marks AS question_marks,
			o.id AS option_id,
			o.text AS option_text,
			o.is_correct AS option_is_correct
		FROM exams e
		JOIN exam_descriptions d ON d.exam_id = e.id
		JOIN sections s ON s.description_id = d.id
		LEFT JOIN questions q ON q.section_id = s.id
		LEFT JOIN options o ON o.question_id = q.id
		WHERE e.id = ?
		ORDER BY s.id, q.id, o.id`

	selectEntityIDsSQL = `
		SELECT
			s.id AS section_id,
			COALESCE(q.id, 0) AS question_id,
			COALESCE(o.id, 0) AS option_id
		FROM exam_descriptions d
		JOIN sections s ON s.description_id = d.id
		LEFT JOIN questions q ON q.section_id = s.id
		LEFT JOIN options o ON o.question_id = q.id
		WHERE d.exam_id = ?`

	updateSectionsSQL = `
		UPDATE sections AS s
		SET title = v.title
		FROM UNNEST(?::bigint[], ?::text[]) AS v(id, title)
		WHERE s.id = v.id
		  AND s.description_id IN (SELECT id FROM exam_descriptions WHERE exam_id = ?)`

	updateQuestionsSQL = `
		UPDATE questions AS q
		SET text = v.text, description = v.description, marks = v.marks
		FROM UNNEST(?::bigint[], ?::text[], ?::text[], ?::bigint[]) AS v(id, text, description, marks)
		WHERE q.id = v.id
		  AND q.section_id IN (
			SELECT s.id FROM sections s
			JOIN exam_descriptions d ON d.id = s.description_id
			WHERE d.exam_id = ?)`

	updateOptionsSQL = `
		UPDATE options AS o
		SET text = v.text, is_correct = v.is_correct
		FROM UNNEST(?::bigint[], ?::text[], ?::bool[]) AS v(id, text, is_correct)
		WHERE o.id = v.id
		  AND o.question_id IN (
			SELECT q.id FROM questions q
			JOIN sections s ON s.id = q.section_id
			JOIN exam_descriptions d ON d.id = s.description_id
			WHERE d.exam_id = ?)`
)

// Create persists a whole exam tree in one transaction, parents before children.
// Nothing of the exam is visible if any step fails.
func (r *examRepository) Create(ctx context.Context, rows *model.ExamRows) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&model.Exam{ID: rows.Exam.ID}).Error; err != nil {
			return classify(err, "failed to insert exam")
		}
		desc := rows.Description
		if err := tx.Omit(clause.Associations).Create(&desc).Error; err != nil {
			return classify(err, "failed to insert exam description")
		}
		if rows.Sections.Len() > 0 {
			s := rows.Sections
			if err := tx.Exec(insertSectionsSQL, pq.Array(s.IDs), pq.Array(s.DescriptionIDs), pq.Array(s.Titles)).Error; err != nil {
				return classify(err, "failed to insert sections")
			}
		}
		if rows.Questions.Len() > 0 {
			q := rows.Questions
			if err := tx.Exec(insertQuestionsSQL, pq.Array(q.IDs), pq.Array(q.SectionIDs), pq.Array(q.Texts), pq.Array(q.Descriptions), pq.Array(q.Marks)).Error; err != nil {
				return classify(err, "failed to insert questions")
			}
		}
		if rows.Options.Len() > 0 {
			o := rows.Options
			if err := tx.Exec(insertOptionsSQL, pq.Array(o.IDs), pq.Array(o.QuestionIDs), pq.Array(o.Texts), pq.Array(o.IsCorrect)).Error; err != nil {
				return classify(err, "failed to insert options")
			}
		}
		return nil
	})
	if err != nil {
		return 0, wrapTx(err, "failed to insert exam")
	}
	log.Debug().
		Int64("exam_id", rows.Exam.ID).
		Int("sections", rows.Sections.Len()).
		Int("questions", rows.Questions.Len()).
		Int("options", rows.Options.Len()).
		Msg("Exam tree inserted")
	return rows.Exam.ID, nil
}

// FindTree loads the exam, its description and the flat join rows from one
// read-only snapshot.
func (r *examRepository) FindTree(ctx context.Context, examID int64) (*model.ExamTree, error) {
	var tree model.ExamTree
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).First(&tree.Exam, examID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("exam %d not found", examID)
			}
			return apperror.Storage(err, "failed to fetch exam id")
		}
		if err := tx.Where("exam_id = ?", examID).First(&tree.Description).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("description for exam %d not found", examID)
			}
			return apperror.Storage(err, "failed to fetch exam description")
		}
		if err := tx.Raw(selectTreeRowsSQL, examID).Scan(&tree.Rows).Error; err != nil {
			return apperror.Storage(err, "failed to fetch sections and questions")
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, wrapTx(err, "failed to read exam")
	}
	return &tree, nil
}

// Delete removes the exam row; the schema cascades to every descendant. Deleting
// an unknown id succeeds.
func (r *examRepository) Delete(ctx context.Context, examID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Exam{}, examID)
		if res.Error != nil {
			return apperror.Storage(res.Error, "failed to delete exam")
		}
		log.Debug().Int64("exam_id", examID).Int64("rows", res.RowsAffected).Msg("Exam delete executed")
		return nil
	})
	return wrapTx(err, "failed to delete exam")
}

// DeleteEntities removes the listed sections, questions and options of one exam,
// expanding the request to every descendant first. An empty request is a no-op.
func (r *examRepository) DeleteEntities(ctx context.Context, examID int64, ids model.IDSet) error {
	if ids.IsEmpty() {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteEntitiesTx(tx, examID, ids)
	})
	return wrapTx(err, "failed to delete exam entities")
}

// Edit applies all batched field updates and then the deletions in one
// transaction. An empty edit writes nothing.
func (r *examRepository) Edit(ctx context.Context, edit *model.ExamEdit) error {
	if edit.IsEmpty() {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if edit.Sections.Len() > 0 {
			s := edit.Sections
			if err := tx.Exec(updateSectionsSQL, pq.Array(s.IDs), pq.Array(s.Titles), edit.ExamID).Error; err != nil {
				return classify(err, "failed to update sections")
			}
		}
		if edit.Questions.Len() > 0 {
			q := edit.Questions
			if err := tx.Exec(updateQuestionsSQL, pq.Array(q.IDs), pq.Array(q.Texts), pq.Array(q.Descriptions), pq.Array(q.Marks), edit.ExamID).Error; err != nil {
				return classify(err, "failed to update questions")
			}
		}
		if edit.Options.Len() > 0 {
			o := edit.Options
			if err := tx.Exec(updateOptionsSQL, pq.Array(o.IDs), pq.Array(o.Texts), pq.Array(o.IsCorrect), edit.ExamID).Error; err != nil {
				return classify(err, "failed to update options")
			}
		}
		if !edit.Delete.IsEmpty() {
			return deleteEntitiesTx(tx, edit.ExamID, edit.Delete)
		}
		return nil
	})
	return wrapTx(err, "failed to edit exam")
}

func deleteEntitiesTx(tx *gorm.DB, examID int64, ids model.IDSet) error {
	var snapshot []model.EntityIDs
	if err := tx.Raw(selectEntityIDsSQL, examID).Scan(&snapshot).Error; err != nil {
		return apperror.Storage(err, "failed to fetch exam entity ids")
	}

	plan, dropped := expandDeletion(ids, snapshot)
	if dropped > 0 {
		log.Warn().Int64("exam_id", examID).Int("dropped", dropped).Msg("Ignoring deletion ids that do not belong to the exam")
	}

	if len(plan.SectionIDs) > 0 {
		if err := tx.Where("id = ANY(?)", pq.Array(plan.SectionIDs)).Delete(&model.Section{}).Error; err != nil {
			return apperror.Storage(err, "failed to delete sections")
		}
	}
	if len(plan.QuestionIDs) > 0 {
		if err := tx.Where("id = ANY(?)", pq.Array(plan.QuestionIDs)).Delete(&model.Question{}).Error; err != nil {
			return apperror.Storage(err, "failed to delete questions")
		}
	}
	if len(plan.OptionIDs) > 0 {
		if err := tx.Where("id = ANY(?)", pq.Array(plan.OptionIDs)).Delete(&model.Option{}).Error; err != nil {
			return apperror.Storage(err, "failed to delete options")
		}
	}
	return nil
}

// classify turns constraint violations into validation errors: the caller sent a
// tree whose ids clash with existing rows or point at rows that do not exist.
func classify(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503", "23505", "23502":
			log.Warn().Str("constraint", pgErr.ConstraintName).Str("code", pgErr.Code).Msg(op)
			return &apperror.Error{
				Kind:    apperror.KindValidation,
				Message: op + ": exam tree references missing or conflicting ids",
				Err:     err,
			}
		}
	}
	return apperror.Storage(err, "%s", op)
}

// wrapTx keeps already classified errors and marks everything else (begin/commit
// failures) as storage errors.
func wrapTx(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Storage(fmt.Errorf("transaction: %w", err), "%s", op)
}
