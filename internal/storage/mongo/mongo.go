package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/princekumarofficial/media-service/internal/config"
	"github.com/princekumarofficial/media-service/internal/storage"
	"github.com/princekumarofficial/media-service/internal/types/media"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const titleIndexName = "title_unique"

type Mongo struct {
	Client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongo connects to the configured server, verifies the connection and
// makes sure the unique title index exists.
func NewMongo(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.Mongo.URI()).
		SetServerSelectionTimeout(cfg.Mongo.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo at %s: %w", cfg.Mongo.URI(), err)
	}

	m := &Mongo{
		Client:     client,
		collection: client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection),
		timeout:    cfg.Mongo.Timeout,
	}

	if err := m.CreateIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	slog.Info("Connected to MongoDB",
		slog.String("database", cfg.Mongo.Database),
		slog.String("collection", cfg.Mongo.Collection))

	return m, nil
}

// CreateIndexes enforces title uniqueness at the database level
func (m *Mongo) CreateIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(titleIndexName),
	})
	if err != nil {
		return fmt.Errorf("failed to create title index: %w", err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *Mongo) ListMedia(ctx context.Context, opts media.QueryOptions) ([]media.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	cursor, err := m.collection.Find(ctx, bson.D{}, findOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to query media: %w", err)
	}

	results := []media.Media{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode media: %w", err)
	}

	return results, nil
}

func (m *Mongo) GetMediaByID(ctx context.Context, id bson.ObjectID) (media.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var result media.Media
	err := m.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return result, storage.ErrNotFound
	}
	if err != nil {
		return result, fmt.Errorf("failed to find media %s: %w", id.Hex(), err)
	}

	return result, nil
}

func (m *Mongo) CreateMedia(ctx context.Context, item *media.Media) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	id := bson.NewObjectID()
	item.ID = &id

	if _, err := m.collection.InsertOne(ctx, item); err != nil {
		item.ID = nil
		if mongo.IsDuplicateKeyError(err) {
			return storage.ErrDuplicateTitle
		}
		return fmt.Errorf("failed to insert media: %w", err)
	}

	return nil
}

func (m *Mongo) UpdateMedia(ctx context.Context, id bson.ObjectID, patch media.UpdateMediaRequest) (media.Media, error) {
	if patch.IsEmpty() {
		return m.GetMediaByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var result media.Media
	err := m.collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: updateDocument(patch)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&result)

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return result, storage.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return result, storage.ErrDuplicateTitle
	case err != nil:
		return result, fmt.Errorf("failed to update media %s: %w", id.Hex(), err)
	}

	return result, nil
}

func (m *Mongo) DeleteMedia(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := m.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete media %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// updateDocument builds the $set body from the fields present in patch.
// Status goes through its string form so it is stored exactly as on insert.
func updateDocument(patch media.UpdateMediaRequest) bson.D {
	set := bson.D{}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Genres != nil {
		set = append(set, bson.E{Key: "genres", Value: patch.Genres})
	}
	if patch.Rating != nil {
		set = append(set, bson.E{Key: "rating", Value: *patch.Rating})
	}
	if patch.Status != nil {
		set = append(set, bson.E{Key: "status", Value: string(*patch.Status)})
	}
	return set
}

func findOptions(opts media.QueryOptions) *options.FindOptionsBuilder {
	find := options.Find().
		SetLimit(opts.Limit).
		SetSkip(opts.Skip())
	if opts.Sort != "" {
		find.SetSort(bson.D{{Key: opts.Sort, Value: opts.Order}})
	}
	return find
}
