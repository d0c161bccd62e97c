// README: Poll and vote store backed by PostgreSQL.
package poll

import (
	"context"
	"encoding/json"
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

func (s *Store) Create(ctx context.Context, p *Poll) error {
	opts, err := json.Marshal(p.Options)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO polls (id, trip_id, title, options, public_token, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		string(p.ID),
		string(p.TripID),
		p.Title,
		opts,
		p.PublicToken,
		p.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Poll, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, trip_id, title, options, public_token, created_at
        FROM polls
        WHERE id = $1`, string(id),
	)
	var p Poll
	var opts []byte
	err := row.Scan(&p.ID, &p.TripID, &p.Title, &opts, &p.PublicToken, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(opts, &p.Options); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) AddVote(ctx context.Context, v *Vote) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO poll_votes (poll_id, option_id, voter_token, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (poll_id, voter_token) DO UPDATE SET option_id = $2, created_at = $4`,
		string(v.PollID),
		v.OptionID,
		v.VoterToken,
		v.CreatedAt,
	)
	return err
}

func (s *Store) CountVotes(ctx context.Context, pollID types.ID) (map[string]int, error) {
	rows, err := s.db.Query(ctx, `
        SELECT option_id, COUNT(*)
        FROM poll_votes
        WHERE poll_id = $1
        GROUP BY option_id`, string(pollID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var opt string
		var n int
		if err := rows.Scan(&opt, &n); err != nil {
			return nil, err
		}
		counts[opt] = n
	}
	return counts, rows.Err()
}
