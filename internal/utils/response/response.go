package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/princekumarofficial/media-service/internal/types/media"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// GenericResponse is the envelope for operations without a payload
type GenericResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type MediaData struct {
	Media media.Media `json:"media"`
}

type SingleMediaResponse struct {
	Status string    `json:"status"`
	Data   MediaData `json:"data"`
}

type MediaListResponse struct {
	Status  string        `json:"status"`
	Results int           `json:"results"`
	Media   []media.Media `json:"media"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func Success(message string) GenericResponse {
	return GenericResponse{
		Status:  StatusSuccess,
		Message: message,
	}
}

func Fail(message string) GenericResponse {
	return GenericResponse{
		Status:  StatusFail,
		Message: message,
	}
}

func GeneralError(err error) GenericResponse {
	return Fail(err.Error())
}

func ValidationError(errs validator.ValidationErrors) GenericResponse {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Field()+": "+err.Tag())
	}

	return Fail(strings.Join(messages, "; "))
}

func SingleMedia(m media.Media) SingleMediaResponse {
	return SingleMediaResponse{
		Status: StatusSuccess,
		Data:   MediaData{Media: m},
	}
}

// MediaList builds a list envelope; Results is always len(items)
func MediaList(items []media.Media) MediaListResponse {
	if items == nil {
		items = []media.Media{}
	}
	return MediaListResponse{
		Status:  StatusSuccess,
		Results: len(items),
		Media:   items,
	}
}
