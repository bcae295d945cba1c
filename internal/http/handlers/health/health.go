package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/princekumarofficial/media-service/internal/utils/response"
)

const message = "Server is running"

// Check reports how long the process has been up
// @Summary Health check
// @Description Report that the server is running and its uptime in seconds
// @Tags health
// @Produce json
// @Success 200 {object} response.GenericResponse "Server is running"
// @Router /health [get]
func Check(startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(startTime).Seconds())
		if uptime < 0 {
			uptime = 0
		}

		response.WriteJSON(w, http.StatusOK, response.Success(fmt.Sprintf("%s since %d seconds", message, uptime)))
	}
}
