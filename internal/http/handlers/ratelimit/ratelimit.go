package ratelimit

import (
	"net/http"

	"github.com/princekumarofficial/media-service/internal/http/middleware"
	"github.com/princekumarofficial/media-service/internal/utils/response"
)

type StatusResponse struct {
	Status  string                             `json:"status"`
	Enabled bool                               `json:"enabled"`
	Client  string                             `json:"client"`
	Actions map[string]middleware.ActionStatus `json:"actions"`
}

// Status reports the caller's remaining tokens for each rate limited action
// @Summary Rate limit status
// @Description Remaining tokens for the calling client, per limited action
// @Tags rate-limit
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} response.GenericResponse
// @Router /rate-limit [get]
func Status(rl *middleware.RateLimit) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client := middleware.ClientIP(r)

		actions, err := rl.Remaining(r.Context(), client)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, StatusResponse{
			Status:  response.StatusSuccess,
			Enabled: rl != nil,
			Client:  client,
			Actions: actions,
		})
	}
}
