// README: Poll service: creation, voting, and result tallies.
package poll

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripweaver/internal/types"
)

var (
	ErrNotFound      = errors.New("poll not found")
	ErrBadRequest    = errors.New("bad poll request")
	ErrUnknownOption = errors.New("unknown poll option")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	TripID  types.ID
	Title   string
	Options []string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Poll, error) {
	if cmd.TripID == "" || strings.TrimSpace(cmd.Title) == "" {
		return nil, fmt.Errorf("%w: tripId and title are required", ErrBadRequest)
	}
	if len(cmd.Options) < 2 {
		return nil, fmt.Errorf("%w: a poll needs at least two options", ErrBadRequest)
	}

	p := &Poll{
		ID:          types.ID(uuid.NewString()),
		TripID:      cmd.TripID,
		Title:       cmd.Title,
		Options:     make([]Option, 0, len(cmd.Options)),
		PublicToken: publicToken(),
		CreatedAt:   time.Now().UTC(),
	}
	for i, label := range cmd.Options {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("%w: option %d is empty", ErrBadRequest, i+1)
		}
		p.Options = append(p.Options, Option{ID: fmt.Sprintf("opt-%d", i+1), Label: label})
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Vote records one voter's choice. A missing voter token gets a fresh one;
// the token is returned so clients can revote with the same identity.
func (s *Service) Vote(ctx context.Context, pollID types.ID, optionID, voterToken string) (string, error) {
	p, err := s.store.Get(ctx, pollID)
	if err != nil {
		return "", err
	}
	if !p.hasOption(optionID) {
		return "", fmt.Errorf("%w: %s", ErrUnknownOption, optionID)
	}
	if voterToken == "" {
		voterToken = newVoterToken()
	}
	err = s.store.AddVote(ctx, &Vote{
		PollID:     pollID,
		OptionID:   optionID,
		VoterToken: voterToken,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return voterToken, nil
}

func (s *Service) Results(ctx context.Context, pollID types.ID) (*Results, error) {
	p, err := s.store.Get(ctx, pollID)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.CountVotes(ctx, pollID)
	if err != nil {
		return nil, err
	}
	// Every option shows up in the tally, voted or not.
	total := 0
	for _, opt := range p.Options {
		total += counts[opt.ID]
		if _, ok := counts[opt.ID]; !ok {
			counts[opt.ID] = 0
		}
	}
	return &Results{Poll: p, Counts: counts, Total: total}, nil
}

func (p *Poll) hasOption(optionID string) bool {
	for _, opt := range p.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

func publicToken() string {
	var b [9]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

func newVoterToken() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
