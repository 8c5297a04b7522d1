package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"forum-api/internal/domain/question"
	pkgerrors "forum-api/pkg/errors"
	"forum-api/pkg/security"
)

// QuestionRepoPG implements the question repository interface using PostgreSQL and GORM.
type QuestionRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewQuestionRepoPG creates a new instance of QuestionRepoPG.
func NewQuestionRepoPG(db *gorm.DB, log *zap.Logger) *QuestionRepoPG {
	return &QuestionRepoPG{db: db, log: log}
}

// QuestionSchema represents the database schema for the questions table.
type QuestionSchema struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"not null"`
	Slug      string    `gorm:"not null;uniqueIndex"`
	Content   string    `gorm:"not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for the QuestionSchema model.
func (QuestionSchema) TableName() string {
	return "questions"
}

// Create inserts a new question into the database. A duplicate-slug violation
// from the unique index is translated into an AlreadyExistsError.
func (r *QuestionRepoPG) Create(ctx context.Context, q *question.Question) (uuid.UUID, error) {
	if q == nil {
		return uuid.Nil, errors.New("question cannot be nil")
	}

	model := QuestionSchema{
		ID:       uuid.New(),
		Title:    q.Title,
		Slug:     q.Slug,
		Content:  q.Content,
		AuthorID: q.AuthorID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate slug rejected by unique index", zap.String("slug", q.Slug))
			return uuid.Nil, pkgerrors.NewAlreadyExistsError("question", "slug already exists")
		}
		r.log.Error("failed to create question in db", zap.Error(err), zap.String("slug", q.Slug))
		return uuid.Nil, fmt.Errorf("failed to create question: %w", err)
	}

	r.log.Info("question created in db", zap.String("id", model.ID.String()))
	return model.ID, nil
}

// List retrieves questions newest first with pagination and an optional title
// search. The search term is vetted and its LIKE wildcards escaped before it
// reaches the query.
func (r *QuestionRepoPG) List(ctx context.Context, query string, page, limit int64) ([]question.Question, int64, error) {
	validated, err := security.ValidateSearchQuery(query)
	if err != nil {
		r.log.Warn("rejected search query", zap.String("query", query), zap.Error(err))
		return nil, 0, pkgerrors.NewValidationError("query", "invalid search query")
	}

	tx := r.db.WithContext(ctx).Model(&QuestionSchema{})
	if validated != "" {
		tx = tx.Where("title LIKE ?", "%"+security.SanitizeSearchString(validated)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.log.Error("failed to count questions", zap.Error(err), zap.String("query", validated))
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	var models []QuestionSchema
	if err := tx.Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&models).Error; err != nil {
		r.log.Error("failed to list questions from db", zap.Error(err), zap.String("query", validated), zap.Int64("page", page), zap.Int64("limit", limit))
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]question.Question, len(models))
	for i, model := range models {
		questions[i] = question.Question{
			ID:        model.ID,
			Title:     model.Title,
			Slug:      model.Slug,
			Content:   model.Content,
			AuthorID:  model.AuthorID,
			CreatedAt: model.CreatedAt,
		}
	}

	return questions, total, nil
}
