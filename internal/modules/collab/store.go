// README: Collaboration message store backed by PostgreSQL.
package collab

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripweaver/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, m *Message) error {
	row := s.db.QueryRow(ctx, `
        INSERT INTO collab_messages (trip_id, user_id, body, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		string(m.TripID),
		string(m.UserID),
		m.Body,
		m.CreatedAt,
	)
	return row.Scan(&m.ID)
}

func (s *Store) ListByTrip(ctx context.Context, tripID types.ID, limit int) ([]*Message, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, trip_id, user_id, body, created_at
        FROM collab_messages
        WHERE trip_id = $1
        ORDER BY created_at DESC
        LIMIT $2`, string(tripID), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.TripID, &m.UserID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, &m)
	}
	return msgs, rows.Err()
}
