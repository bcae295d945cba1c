package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/princekumarofficial/media-service/internal/storage"
	"github.com/princekumarofficial/media-service/internal/types/media"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory is a process-local Storage used by tests and by the "memory"
// storage driver. Documents are kept in insertion order.
type Memory struct {
	mu      sync.RWMutex
	order   []bson.ObjectID
	byID    map[bson.ObjectID]media.Media
	byTitle map[string]bson.ObjectID
}

func NewMemory() *Memory {
	return &Memory{
		byID:    make(map[bson.ObjectID]media.Media),
		byTitle: make(map[string]bson.ObjectID),
	}
}

// Len returns the number of stored documents
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *Memory) ListMedia(ctx context.Context, opts media.QueryOptions) ([]media.Media, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	all := make([]media.Media, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, clone(s.byID[id]))
	}
	s.mu.RUnlock()

	if opts.Sort != "" {
		sort.SliceStable(all, func(i, j int) bool {
			c := compare(all[i], all[j], opts.Sort)
			if opts.Order < 0 {
				return c > 0
			}
			return c < 0
		})
	}

	start := opts.Skip()
	if start < 0 || start >= int64(len(all)) {
		return []media.Media{}, nil
	}
	end := start + opts.Limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}

	return all[start:end], nil
}

func (s *Memory) GetMediaByID(ctx context.Context, id bson.ObjectID) (media.Media, error) {
	if err := ctx.Err(); err != nil {
		return media.Media{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[id]
	if !ok {
		return media.Media{}, storage.ErrNotFound
	}
	return clone(m), nil
}

func (s *Memory) CreateMedia(ctx context.Context, m *media.Media) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byTitle[m.Title]; exists {
		return storage.ErrDuplicateTitle
	}

	id := bson.NewObjectID()
	m.ID = &id

	s.byID[id] = clone(*m)
	s.byTitle[m.Title] = id
	s.order = append(s.order, id)

	return nil
}

func (s *Memory) UpdateMedia(ctx context.Context, id bson.ObjectID, patch media.UpdateMediaRequest) (media.Media, error) {
	if err := ctx.Err(); err != nil {
		return media.Media{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return media.Media{}, storage.ErrNotFound
	}

	updated := clone(current)
	patch.Apply(&updated)

	if updated.Title != current.Title {
		if _, taken := s.byTitle[updated.Title]; taken {
			return media.Media{}, storage.ErrDuplicateTitle
		}
		delete(s.byTitle, current.Title)
		s.byTitle[updated.Title] = id
	}

	s.byID[id] = updated
	return clone(updated), nil
}

func (s *Memory) DeleteMedia(ctx context.Context, id bson.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.byID[id]
	if !ok {
		return storage.ErrNotFound
	}

	delete(s.byID, id)
	delete(s.byTitle, m.Title)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func clone(m media.Media) media.Media {
	if m.ID != nil {
		id := *m.ID
		m.ID = &id
	}
	if m.Genres != nil {
		m.Genres = slices.Clone(m.Genres)
	}
	return m
}

func compare(a, b media.Media, field string) int {
	switch field {
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "status":
		return strings.Compare(string(a.Status), string(b.Status))
	case "type":
		return strings.Compare(string(a.MediaType), string(b.MediaType))
	case "rating":
		switch {
		case a.Rating < b.Rating:
			return -1
		case a.Rating > b.Rating:
			return 1
		}
		return 0
	case "_id":
		return strings.Compare(a.ID.Hex(), b.ID.Hex())
	}
	return 0
}
