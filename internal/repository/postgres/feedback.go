package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
)

// PostgresFeedbackRepository implements the FeedbackRepository interface
type PostgresFeedbackRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(config *RepositoryConfig) repositories.FeedbackRepository {
	return &PostgresFeedbackRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Get retrieves the feedback for a section, or nil if none exists
func (r *PostgresFeedbackRepository) Get(ctx context.Context, sectionID string) (*domain.Feedback, error) {
	query := fmt.Sprintf(`
		SELECT id, section_id, liked, comment, updated_at
		FROM %s
		WHERE section_id = $1
	`, r.tables.Feedback)

	var fb domain.Feedback
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, sectionID).Scan(
		&fb.ID,
		&fb.SectionID,
		&fb.Liked,
		&fb.Comment,
		&fb.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}

	return &fb, nil
}

// Upsert creates or merges feedback for a section. COALESCE keeps the stored
// value whenever the incoming field was not supplied.
func (r *PostgresFeedbackRepository) Upsert(ctx context.Context, fb *domain.Feedback) error {
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}

	var comment *string
	if fb.Comment != "" {
		comment = &fb.Comment
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, liked, comment, updated_at)
		VALUES ($1, $2, $3, COALESCE($4, ''), NOW())
		ON CONFLICT (section_id) DO UPDATE SET
			liked = COALESCE($3, %s.liked),
			comment = COALESCE($4, %s.comment),
			updated_at = NOW()
	`, r.tables.Feedback, r.tables.Feedback, r.tables.Feedback)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, fb.ID, fb.SectionID, fb.Liked, comment)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", fb.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("upsert feedback: %w", err)
	}

	return nil
}
