package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
)

// PostgresSectionRepository implements the SectionRepository interface
type PostgresSectionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(config *RepositoryConfig) repositories.SectionRepository {
	return &PostgresSectionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a section
func (r *PostgresSectionRepository) Create(ctx context.Context, section *domain.Section) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, title, content, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		section.ID,
		section.ProjectID,
		section.Title,
		section.Content,
		section.OrderIndex,
		section.CreatedAt,
		section.UpdatedAt,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", section.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create section: %w", err)
	}

	return nil
}

// GetByID retrieves a section by ID
func (r *PostgresSectionRepository) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, title, content, order_index, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Sections)

	var section domain.Section
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.ProjectID,
		&section.Title,
		&section.Content,
		&section.OrderIndex,
		&section.CreatedAt,
		&section.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get section: %w", err)
	}

	return &section, nil
}

// ListByProject retrieves a project's sections ordered by order_index
func (r *PostgresSectionRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, title, content, order_index, created_at, updated_at
		FROM %s
		WHERE project_id = $1
		ORDER BY order_index ASC
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var section domain.Section
		err := rows.Scan(
			&section.ID,
			&section.ProjectID,
			&section.Title,
			&section.Content,
			&section.OrderIndex,
			&section.CreatedAt,
			&section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}

	if sections == nil {
		sections = []domain.Section{}
	}

	return sections, nil
}

// UpdateContent replaces a section's content wholesale
func (r *PostgresSectionRepository) UpdateContent(ctx context.Context, id, content string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $1, updated_at = NOW()
		WHERE id = $2
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, content, id)
	if err != nil {
		return fmt.Errorf("update section content: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
