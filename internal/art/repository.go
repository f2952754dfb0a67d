package art

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// Repository persists pixel-art canvases. Updates are owner-scoped; the
// published retrieval and delete endpoints carry only the art id, so Get and
// Delete match by id alone.
type Repository interface {
	Insert(ctx context.Context, a Art) error
	Update(ctx context.Context, a Art) error
	Get(ctx context.Context, id string) (Art, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Art, error)
	Delete(ctx context.Context, id string) error
}

// PostgresRepository stores canvases in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert creates a canvas row.
func (r *PostgresRepository) Insert(ctx context.Context, a Art) error {
	artID, err := uuid.Parse(a.ID)
	if err != nil {
		return apperr.Validation("invalid art id")
	}
	_, err = r.db.Exec(ctx, `INSERT INTO arts (id, owner_id, name, pixels, width, height, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		artID, a.OwnerID, a.Name, a.Pixels, a.Width, a.Height, a.CreatedAt.UTC())
	return err
}

// Update replaces the mutable fields of an owned canvas.
func (r *PostgresRepository) Update(ctx context.Context, a Art) error {
	artID, err := uuid.Parse(a.ID)
	if err != nil {
		return apperr.Validation("invalid art id")
	}
	cmd, err := r.db.Exec(ctx, `UPDATE arts SET name = $1, pixels = $2, width = $3, height = $4, updated_at = $5
        WHERE id = $6 AND owner_id = $7`,
		a.Name, a.Pixels, a.Width, a.Height, time.Now().UTC(), artID, a.OwnerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Pixel art not found")
	}
	return nil
}

// Get fetches a canvas by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Art, error) {
	artID, err := uuid.Parse(id)
	if err != nil {
		return Art{}, apperr.Validation("invalid art id")
	}
	row := r.db.QueryRow(ctx, `SELECT id, owner_id, name, pixels, width, height, created_at, updated_at
        FROM arts WHERE id = $1`, artID)
	return scanArt(row)
}

// ListByOwner returns every canvas owned by the given user.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]Art, error) {
	rows, err := r.db.Query(ctx, `SELECT id, owner_id, name, pixels, width, height, created_at, updated_at
        FROM arts WHERE owner_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arts []Art
	for rows.Next() {
		a, err := scanArt(rows)
		if err != nil {
			return nil, err
		}
		arts = append(arts, a)
	}
	return arts, rows.Err()
}

// Delete removes a canvas by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	artID, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validation("invalid art id")
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM arts WHERE id = $1`, artID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Pixel art not found")
	}
	return nil
}

func scanArt(row pgx.Row) (Art, error) {
	var (
		a         Art
		idVal     uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&idVal, &a.OwnerID, &a.Name, &a.Pixels, &a.Width, &a.Height, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Art{}, apperr.NotFound("Pixel art not found")
		}
		return Art{}, err
	}
	a.ID = idVal.String()
	a.CreatedAt = createdAt.UTC()
	a.UpdatedAt = updatedAt.UTC()
	return a, nil
}
