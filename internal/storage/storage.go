package storage

import (
	"context"
	"errors"

	"github.com/princekumarofficial/media-service/internal/types/media"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrNotFound is returned when no media matches the requested identifier
	ErrNotFound = errors.New("media not found")

	// ErrDuplicateTitle is returned when a write would give two media the same title
	ErrDuplicateTitle = errors.New("media with this title already exists")
)

type Storage interface {
	ListMedia(ctx context.Context, opts media.QueryOptions) ([]media.Media, error)
	GetMediaByID(ctx context.Context, id bson.ObjectID) (media.Media, error)
	// CreateMedia persists m and sets its ID
	CreateMedia(ctx context.Context, m *media.Media) error
	UpdateMedia(ctx context.Context, id bson.ObjectID, patch media.UpdateMediaRequest) (media.Media, error)
	DeleteMedia(ctx context.Context, id bson.ObjectID) error
}
