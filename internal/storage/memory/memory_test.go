package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/princekumarofficial/media-service/internal/storage"
	"github.com/princekumarofficial/media-service/internal/types/media"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newMedia(title string, rating float64) media.Media {
	return media.Media{
		Title:     title,
		Genres:    []string{"Drama"},
		Rating:    rating,
		Status:    media.StatusWatching,
		MediaType: media.TypeShow,
	}
}

func TestMemory_CreateAndGet(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	m := newMedia("The Wire", 5)
	if err := s.CreateMedia(ctx, &m); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.ID == nil {
		t.Fatal("Expected ID to be set")
	}

	got, err := s.GetMediaByID(ctx, *m.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Title != "The Wire" {
		t.Fatalf("Unexpected media %+v", got)
	}

	// Returned copies do not alias stored state
	got.Genres[0] = "Comedy"
	again, _ := s.GetMediaByID(ctx, *m.ID)
	if again.Genres[0] != "Drama" {
		t.Fatal("Stored genres were modified through a returned copy")
	}

	if _, err := s.GetMediaByID(ctx, bson.NewObjectID()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemory_ConcurrentDuplicateTitles(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created, conflicts := 0, 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := newMedia("Same Title", 1)
			err := s.CreateMedia(ctx, &m)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, storage.ErrDuplicateTitle):
				conflicts++
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if created != 1 || conflicts != 49 {
		t.Fatalf("Expected 1 created and 49 conflicts, got %d and %d", created, conflicts)
	}
	if s.Len() != 1 {
		t.Fatalf("Expected one document, got %d", s.Len())
	}
}

func TestMemory_ListSortsAndPages(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	for i, rating := range []float64{2, 4.5, 0.5, 3} {
		m := newMedia(fmt.Sprintf("Show %d", i), rating)
		if err := s.CreateMedia(ctx, &m); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	got, err := s.ListMedia(ctx, media.QueryOptions{Page: 1, Limit: 10, Sort: "rating", Order: -1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []float64{4.5, 3, 2, 0.5}
	for i, m := range got {
		if m.Rating != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], m.Rating)
		}
	}

	// Insertion order without a sort field
	got, _ = s.ListMedia(ctx, media.QueryOptions{Page: 2, Limit: 3, Order: 1})
	if len(got) != 1 || got[0].Title != "Show 3" {
		t.Fatalf("Unexpected second page %+v", got)
	}

	got, _ = s.ListMedia(ctx, media.QueryOptions{Page: 3, Limit: 3, Order: 1})
	if len(got) != 0 {
		t.Fatalf("Expected empty page, got %d", len(got))
	}
}

func TestMemory_UpdateAndDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	a := newMedia("A", 1)
	b := newMedia("B", 1)
	s.CreateMedia(ctx, &a)
	s.CreateMedia(ctx, &b)

	title := "B"
	if _, err := s.UpdateMedia(ctx, *a.ID, media.UpdateMediaRequest{Title: &title}); !errors.Is(err, storage.ErrDuplicateTitle) {
		t.Fatalf("Expected ErrDuplicateTitle, got %v", err)
	}

	title = "A2"
	updated, err := s.UpdateMedia(ctx, *a.ID, media.UpdateMediaRequest{Title: &title})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Title != "A2" || updated.Rating != 1 {
		t.Fatalf("Unexpected update result %+v", updated)
	}

	// Old title is released
	c := newMedia("A", 2)
	if err := s.CreateMedia(ctx, &c); err != nil {
		t.Fatalf("Expected old title to be reusable, got %v", err)
	}

	if err := s.DeleteMedia(ctx, *b.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.DeleteMedia(ctx, *b.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if _, err := s.UpdateMedia(ctx, *b.ID, media.UpdateMediaRequest{Title: &title}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Expected 2 documents, got %d", s.Len())
	}
}

func TestMemory_EmptyGenresStayEmpty(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	m := newMedia("Blank", 2)
	m.Genres = []string{}
	if err := s.CreateMedia(ctx, &m); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := s.GetMediaByID(ctx, *m.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	listed, err := s.ListMedia(ctx, media.QueryOptions{Page: 1, Limit: 10, Order: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Clearing genres through a patch keeps an empty list too
	title := "Blank 2"
	patched, err := s.UpdateMedia(ctx, *m.ID, media.UpdateMediaRequest{Title: &title, Genres: []string{}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for name, item := range map[string]media.Media{"get": got, "list": listed[0], "update": patched} {
		data, err := json.Marshal(item)
		if err != nil {
			t.Fatalf("%s: failed to marshal: %v", name, err)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			t.Fatalf("%s: failed to unmarshal: %v", name, err)
		}
		if string(fields["genres"]) != "[]" {
			t.Errorf("%s: expected genres [], got %s", name, fields["genres"])
		}
	}
}

func TestMemory_ListPageBeyondInt64Skip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	m := newMedia("Only", 1)
	s.CreateMedia(ctx, &m)

	got, err := s.ListMedia(ctx, media.QueryOptions{Page: math.MaxInt64, Limit: 100, Order: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Expected empty page, got %d", len(got))
	}
}
