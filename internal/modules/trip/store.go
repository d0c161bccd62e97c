// README: Trip store backed by PostgreSQL.
package trip

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripweaver/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *Trip) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO trips (
            id, owner_id, destination, start_date, end_date,
            travelers, budget_amount, budget_currency, itinerary, share_token, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		string(t.ID),
		string(t.OwnerID),
		t.Destination,
		t.StartDate,
		t.EndDate,
		t.Travelers,
		t.Budget.Amount,
		t.Budget.Currency,
		[]byte(t.Itinerary),
		t.ShareToken,
		t.CreatedAt,
	)
	return err
}

const tripColumns = `id, owner_id, destination, start_date, end_date,
       travelers, budget_amount, budget_currency, itinerary, share_token, created_at`

func (s *Store) Get(ctx context.Context, id types.ID) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+tripColumns+`
        FROM trips
        WHERE id = $1`, string(id),
	)
	return scanTrip(row)
}

func (s *Store) GetByShareToken(ctx context.Context, token string) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+tripColumns+`
        FROM trips
        WHERE share_token = $1`, token,
	)
	return scanTrip(row)
}

func (s *Store) ListByOwner(ctx context.Context, ownerID types.ID) ([]*Trip, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+tripColumns+`
        FROM trips
        WHERE owner_id = $1
        ORDER BY created_at DESC`, string(ownerID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var t Trip
	var itinerary []byte
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Destination, &t.StartDate, &t.EndDate,
		&t.Travelers, &t.Budget.Amount, &t.Budget.Currency, &itinerary,
		&t.ShareToken, &t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Itinerary = itinerary
	return &t, nil
}
