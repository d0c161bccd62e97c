// README: Receipt store backed by PostgreSQL.
package receipt

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripweaver/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, r *Receipt) error {
	var kind *string
	if r.Kind != "" {
		kind = &r.Kind
	}
	_, err := s.db.Exec(ctx, `
        INSERT INTO receipts (id, trip_id, filename, mime_type, bytes, stored_at, kind, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(r.ID),
		string(r.TripID),
		r.Filename,
		r.MimeType,
		r.Bytes,
		r.StoredAt,
		kind,
		r.CreatedAt,
	)
	return err
}

func (s *Store) ListByTrip(ctx context.Context, tripID types.ID) ([]*Receipt, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, trip_id, filename, mime_type, bytes, stored_at, kind, created_at
        FROM receipts
        WHERE trip_id = $1
        ORDER BY created_at DESC`, string(tripID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*Receipt
	for rows.Next() {
		var r Receipt
		var kind sql.NullString
		if err := rows.Scan(&r.ID, &r.TripID, &r.Filename, &r.MimeType, &r.Bytes, &r.StoredAt, &kind, &r.CreatedAt); err != nil {
			return nil, err
		}
		if kind.Valid {
			r.Kind = kind.String
		}
		receipts = append(receipts, &r)
	}
	return receipts, rows.Err()
}
