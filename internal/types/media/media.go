package media

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MediaStatus is the viewing state of a tracked title
type MediaStatus string

const (
	StatusWatching    MediaStatus = "Watching"
	StatusWatched     MediaStatus = "Watched"
	StatusDropped     MediaStatus = "Dropped"
	StatusOnHold      MediaStatus = "OnHold"
	StatusPlanToWatch MediaStatus = "PlanToWatch"
)

// MediaType discriminates movies from shows
type MediaType string

const (
	TypeMovie MediaType = "Movie"
	TypeShow  MediaType = "Show"
)

// Media is a tracked movie or show as stored in the media collection
type Media struct {
	ID          *bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string         `json:"title" bson:"title" validate:"required"`
	Description string         `json:"description" bson:"description"`
	Genres      []string       `json:"genres" bson:"genres"`
	Rating      float64        `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Status      MediaStatus    `json:"status" bson:"status" validate:"required,oneof=Watching Watched Dropped OnHold PlanToWatch"`
	MediaType   MediaType      `json:"type" bson:"type" validate:"required,oneof=Movie Show"`
}

// CreateMediaRequest is the body accepted by POST /api/media. It carries no
// identifier, so any _id sent by the client is dropped during decoding.
type CreateMediaRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Genres      []string    `json:"genres"`
	Rating      float64     `json:"rating" validate:"gte=0,lte=5"`
	Status      MediaStatus `json:"status" validate:"required,oneof=Watching Watched Dropped OnHold PlanToWatch"`
	MediaType   MediaType   `json:"type" validate:"required,oneof=Movie Show"`
}

// ToMedia builds an unsaved Media from the request
func (r CreateMediaRequest) ToMedia() Media {
	genres := r.Genres
	if genres == nil {
		genres = []string{}
	}
	return Media{
		Title:       r.Title,
		Description: r.Description,
		Genres:      genres,
		Rating:      r.Rating,
		Status:      r.Status,
		MediaType:   r.MediaType,
	}
}

// UpdateMediaRequest is a partial patch; nil fields are left untouched
type UpdateMediaRequest struct {
	Title       *string      `json:"title" validate:"omitnil,min=1"`
	Description *string      `json:"description"`
	Genres      []string     `json:"genres"`
	Rating      *float64     `json:"rating" validate:"omitnil,gte=0,lte=5"`
	Status      *MediaStatus `json:"status" validate:"omitnil,oneof=Watching Watched Dropped OnHold PlanToWatch"`
}

// IsEmpty reports whether the patch would change nothing
func (r UpdateMediaRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Genres == nil && r.Rating == nil && r.Status == nil
}

// Apply copies the present fields of the patch onto m
func (r UpdateMediaRequest) Apply(m *Media) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Genres != nil {
		m.Genres = slices.Clone(r.Genres)
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// QueryOptions holds the list filters taken from the query string
type QueryOptions struct {
	Page  int64  `validate:"min=1"`
	Limit int64  `validate:"min=1"`
	Sort  string `validate:"omitempty,oneof=title rating status type _id"`
	Order int    `validate:"oneof=1 -1"`
}

// Skip is the number of documents before the requested page
func (o QueryOptions) Skip() int64 {
	return (o.Page - 1) * o.Limit
}

// ParseQueryOptions reads page, limit, sort and order from q, filling in
// defaults for anything absent. Bounds tied to MaxLimit and to the skip
// fitting in an int64 are checked here; the rest is left to the validator.
func ParseQueryOptions(q url.Values) (QueryOptions, error) {
	opts := QueryOptions{Page: 1, Limit: DefaultLimit, Order: 1, Sort: q.Get("sort")}

	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid page %q", v)
		}
		opts.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid limit %q", v)
		}
		opts.Limit = limit
	}
	if v := q.Get("order"); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("invalid order %q", v)
		}
		opts.Order = order
	}

	if opts.Limit > MaxLimit {
		return opts, fmt.Errorf("limit must not exceed %d", MaxLimit)
	}
	if opts.Limit > 0 && opts.Page-1 > math.MaxInt64/opts.Limit {
		return opts, fmt.Errorf("page %d is out of range", opts.Page)
	}

	return opts, nil
}
