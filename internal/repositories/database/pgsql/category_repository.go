package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, user_id, name, type, created_at, updated_at, deleted_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.Type,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, user_id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.UserID,
		m.Name,
		m.Type,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by ID, tombstoned ones included.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	category := mapping.ToDomainCategory(*m)
	return &category, nil
}

// ListCategories retrieves a filtered, paginated category list plus the total
// count. An owner scope always includes global (ownerless) categories.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, filter portsrepo.ListCategoriesFilter) ([]domain.Category, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.OwnerID != nil {
		where += fmt.Sprintf(" AND (user_id = $%d OR user_id IS NULL)", argPos)
		args = append(args, *filter.OwnerID)
		argPos++
	}
	if filter.Type != nil {
		where += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, string(*filter.Type))
		argPos++
	}
	if !filter.IncludeDeleted {
		where += " AND deleted_at IS NULL"
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	query := `SELECT ` + categoryColumns + ` FROM categories` + where +
		fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Page.PerPage, filter.Page.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var ms []models.Category
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan category row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed reading category rows: %w", err)
	}

	return mapping.ToDomainCategorySlice(ms), total, nil
}

// UpdateCategory updates name and type of an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $2, type = $3, updated_at = $4
		WHERE category_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Type,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

// SoftDeleteCategory tombstones a category; the row is kept so existing
// transactions retain a valid reference.
func (r *PgxCategoryRepository) SoftDeleteCategory(ctx context.Context, categoryID string, deletedAt time.Time) error {
	query := `
		UPDATE categories
		SET deleted_at = $2, updated_at = $2
		WHERE category_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, categoryID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}
