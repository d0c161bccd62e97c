// README: Receipt service: file storage plus metadata records.
package receipt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripweaver/internal/types"
)

var ErrBadRequest = errors.New("bad receipt request")

type Service struct {
	store *Store
	dir   string
}

// NewService stores files under dir; the directory is created on first use.
func NewService(store *Store, dir string) *Service {
	return &Service{store: store, dir: dir}
}

// Save writes the uploaded bytes to local storage and records the metadata.
func (s *Service) Save(ctx context.Context, tripID types.ID, filename, mimeType string, data []byte) (*Receipt, error) {
	if tripID == "" || filename == "" {
		return nil, fmt.Errorf("%w: tripId and filename are required", ErrBadRequest)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrBadRequest)
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	storedAt := filepath.Join(s.dir, fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(filename)))
	if err := os.WriteFile(storedAt, data, 0o644); err != nil {
		return nil, err
	}

	r := &Receipt{
		ID:        types.ID(uuid.NewString()),
		TripID:    tripID,
		Filename:  filename,
		MimeType:  mimeType,
		Bytes:     int64(len(data)),
		StoredAt:  storedAt,
		Kind:      inferKind(filename),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, r); err != nil {
		// Metadata is the source of truth; drop the orphan file.
		_ = os.Remove(storedAt)
		return nil, err
	}
	return r, nil
}

func (s *Service) ListByTrip(ctx context.Context, tripID types.ID) ([]*Receipt, error) {
	return s.store.ListByTrip(ctx, tripID)
}

// inferKind guesses the expense category from the filename.
func inferKind(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "hotel"), strings.Contains(name, "hostel"), strings.Contains(name, "airbnb"):
		return "stay"
	case strings.Contains(name, "flight"), strings.Contains(name, "boarding"):
		return "flight"
	case strings.Contains(name, "train"), strings.Contains(name, "taxi"), strings.Contains(name, "metro"):
		return "transport"
	case strings.Contains(name, "restaurant"), strings.Contains(name, "dinner"), strings.Contains(name, "lunch"):
		return "food"
	default:
		return ""
	}
}
