package media

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/princekumarofficial/media-service/internal/events"
	"github.com/princekumarofficial/media-service/internal/generator"
	"github.com/princekumarofficial/media-service/internal/storage"
	"github.com/princekumarofficial/media-service/internal/types/media"
	"github.com/princekumarofficial/media-service/internal/utils/response"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type MediaHandlers struct {
	storage     storage.Storage
	publisher   events.Publisher
	generator   *generator.Generator
	validate    *validator.Validate
	maxGenerate int
}

// NewMediaHandlers creates a new media handlers instance
func NewMediaHandlers(storage storage.Storage, publisher events.Publisher, gen *generator.Generator, maxGenerate int) *MediaHandlers {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &MediaHandlers{
		storage:     storage,
		publisher:   publisher,
		generator:   gen,
		validate:    validator.New(),
		maxGenerate: maxGenerate,
	}
}

// ListMedia returns a page of media
// @Summary List media
// @Tags media
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param sort query string false "Sort field: title, rating, status, type or _id"
// @Param order query int false "1 for ascending, -1 for descending"
// @Success 200 {object} response.MediaListResponse "Media list"
// @Failure 400 {object} response.GenericResponse "Bad request"
// @Failure 404 {object} response.GenericResponse "No media found"
// @Failure 500 {object} response.GenericResponse "Internal server error"
// @Router /media [get]
func (h *MediaHandlers) ListMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := media.ParseQueryOptions(r.URL.Query())
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if !h.validRequest(w, opts) {
			return
		}

		items, err := h.storage.ListMedia(r.Context(), opts)
		if err != nil {
			h.storageError(w, "Failed to list media", err)
			return
		}

		if len(items) == 0 {
			response.WriteJSON(w, http.StatusNotFound, response.Fail("No media found"))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.MediaList(items))
	}
}

// GetMedia returns a single media document, not wrapped in an envelope
// @Summary Get media by ID
// @Tags media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} media.Media "Media"
// @Failure 400 {object} response.GenericResponse "Invalid media ID"
// @Failure 404 {object} response.GenericResponse "Media not found"
// @Failure 500 {object} response.GenericResponse "Internal server error"
// @Router /media/{id} [get]
func (h *MediaHandlers) GetMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		item, err := h.storage.GetMediaByID(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.Fail(notFoundMessage(id)))
			return
		} else if err != nil {
			h.storageError(w, "Failed to get media", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, item)
	}
}

// CreateMedia stores a new media entry
// @Summary Create media
// @Description Create a media entry; the identifier is assigned by the server
// @Tags media
// @Accept json
// @Produce json
// @Param media body media.CreateMediaRequest true "Media to create"
// @Success 200 {object} response.SingleMediaResponse "Created media"
// @Failure 400 {object} response.GenericResponse "Bad request"
// @Failure 409 {object} response.GenericResponse "Title already exists"
// @Failure 429 {object} response.GenericResponse "Rate limit exceeded"
// @Failure 500 {object} response.GenericResponse "Internal server error"
// @Router /media [post]
func (h *MediaHandlers) CreateMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req media.CreateMediaRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !h.validRequest(w, req) {
			return
		}

		item := req.ToMedia()
		err := h.storage.CreateMedia(r.Context(), &item)
		if errors.Is(err, storage.ErrDuplicateTitle) {
			response.WriteJSON(w, http.StatusConflict, response.Fail(
				fmt.Sprintf("Media with title: '%s' already exists", item.Title)))
			return
		} else if err != nil {
			h.storageError(w, "Failed to create media", err)
			return
		}
		slog.Info("Media created", slog.String("media_id", item.ID.Hex()))

		h.publisher.PublishMediaCreated(item)
		response.WriteJSON(w, http.StatusOK, response.SingleMedia(item))
	}
}

// UpdateMedia applies a partial update
// @Summary Update media
// @Description Only the fields present in the body are changed
// @Tags media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Param media body media.UpdateMediaRequest true "Fields to change"
// @Success 200 {object} response.SingleMediaResponse "Updated media"
// @Failure 400 {object} response.GenericResponse "Bad request"
// @Failure 404 {object} response.GenericResponse "Media not found"
// @Failure 409 {object} response.GenericResponse "Title already exists"
// @Failure 500 {object} response.GenericResponse "Internal server error"
// @Router /media/{id} [patch]
func (h *MediaHandlers) UpdateMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var patch media.UpdateMediaRequest
		if !decodeBody(w, r, &patch) {
			return
		}
		if !h.validRequest(w, patch) {
			return
		}

		item, err := h.storage.UpdateMedia(r.Context(), id, patch)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			response.WriteJSON(w, http.StatusNotFound, response.Fail(notFoundMessage(id)))
			return
		case errors.Is(err, storage.ErrDuplicateTitle):
			response.WriteJSON(w, http.StatusConflict, response.Fail(
				fmt.Sprintf("Media with title: '%s' already exists", *patch.Title)))
			return
		case err != nil:
			h.storageError(w, "Failed to update media", err)
			return
		}

		if !patch.IsEmpty() {
			h.publisher.PublishMediaUpdated(item)
		}
		response.WriteJSON(w, http.StatusOK, response.SingleMedia(item))
	}
}

// DeleteMedia removes a media entry
// @Summary Delete media
// @Tags media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} response.GenericResponse "Media deleted"
// @Failure 400 {object} response.GenericResponse "Invalid media ID"
// @Failure 404 {object} response.GenericResponse "Media not found"
// @Failure 500 {object} response.GenericResponse "Internal server error"
// @Router /media/{id} [delete]
func (h *MediaHandlers) DeleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		err := h.storage.DeleteMedia(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.Fail(notFoundMessage(id)))
			return
		} else if err != nil {
			h.storageError(w, "Failed to delete media", err)
			return
		}
		slog.Info("Media deleted", slog.String("media_id", id.Hex()))

		h.publisher.PublishMediaDeleted(id.Hex())
		response.WriteJSON(w, http.StatusOK, response.Success(
			fmt.Sprintf("Media with ID: %s deleted successfully", id.Hex())))
	}
}

// GenerateMedia creates n random media entries, one write per entry
// @Summary Generate random media
// @Tags media
// @Produce json
// @Param n path int true "Number of entries to create"
// @Success 200 {object} response.MediaListResponse "Created media"
// @Failure 400 {object} response.GenericResponse "Invalid count"
// @Failure 429 {object} response.GenericResponse "Rate limit exceeded"
// @Failure 500 {object} response.GenericResponse "Internal server error"
// @Router /generate-media/{n} [get]
func (h *MediaHandlers) GenerateMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(r.PathValue("n"))
		if err != nil || n < 1 {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail("count must be a positive integer"))
			return
		}
		if h.maxGenerate > 0 && n > h.maxGenerate {
			response.WriteJSON(w, http.StatusBadRequest, response.Fail(
				fmt.Sprintf("count must not exceed %d", h.maxGenerate)))
			return
		}

		created := make([]media.Media, 0, n)
		for i := 0; i < n; i++ {
			item := h.generator.Media()
			if err := h.storage.CreateMedia(r.Context(), &item); err != nil {
				h.storageError(w, "Failed to store generated media", err)
				return
			}
			h.publisher.PublishMediaCreated(item)
			created = append(created, item)
		}
		slog.Info("Generated random media", slog.Int("count", n))

		response.WriteJSON(w, http.StatusOK, response.MediaList(created))
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	raw := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.Fail(fmt.Sprintf("Invalid media ID: %s", raw)))
		return id, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest, response.Fail("request body cannot be empty"))
		return false
	} else if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}
	return true
}

func (h *MediaHandlers) validRequest(w http.ResponseWriter, req interface{}) bool {
	err := h.validate.Struct(req)
	if err == nil {
		return true
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
		return false
	}
	response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
	return false
}

func (h *MediaHandlers) storageError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError, response.Fail(msg))
}

func notFoundMessage(id bson.ObjectID) string {
	return fmt.Sprintf("Media with ID: %s not found", id.Hex())
}
