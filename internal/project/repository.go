package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// Repository persists projects. All operations are scoped to the owning user.
type Repository interface {
	Insert(ctx context.Context, p Project) error
	Update(ctx context.Context, id, ownerID, content string) error
	Get(ctx context.Context, id, ownerID string) (Project, error)
}

// PostgresRepository stores projects in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert creates a project row.
func (r *PostgresRepository) Insert(ctx context.Context, p Project) error {
	projectID, err := uuid.Parse(p.ID)
	if err != nil {
		return apperr.Validation("invalid project id")
	}
	_, err = r.db.Exec(ctx, `INSERT INTO projects (id, owner_id, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $4)`, projectID, p.OwnerID, p.Content, p.CreatedAt.UTC())
	return err
}

// Update replaces the content of an owned project. Matching zero rows is a
// not-found condition, never a silent success.
func (r *PostgresRepository) Update(ctx context.Context, id, ownerID, content string) error {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validation("invalid project id")
	}
	cmd, err := r.db.Exec(ctx, `UPDATE projects SET content = $1, updated_at = $2
        WHERE id = $3 AND owner_id = $4`, content, time.Now().UTC(), projectID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Project not found")
	}
	return nil
}

// Get fetches an owned project by id.
func (r *PostgresRepository) Get(ctx context.Context, id, ownerID string) (Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return Project{}, apperr.Validation("invalid project id")
	}
	row := r.db.QueryRow(ctx, `SELECT id, owner_id, content, created_at, updated_at
        FROM projects WHERE id = $1 AND owner_id = $2`, projectID, ownerID)
	var (
		p         Project
		idVal     uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&idVal, &p.OwnerID, &p.Content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound("Project not found")
		}
		return Project{}, err
	}
	p.ID = idVal.String()
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}
