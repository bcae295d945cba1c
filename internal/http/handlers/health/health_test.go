package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/princekumarofficial/media-service/internal/utils/response"
)

func TestCheck(t *testing.T) {
	handler := Check(time.Now().Add(-42 * time.Second))

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body response.GenericResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Status != response.StatusSuccess {
		t.Errorf("Expected status success, got %q", body.Status)
	}
	if !strings.HasPrefix(body.Message, "Server is running since 4") || !strings.HasSuffix(body.Message, " seconds") {
		t.Errorf("Unexpected message %q", body.Message)
	}
}
