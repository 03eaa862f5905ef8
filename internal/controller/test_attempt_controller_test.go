package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"testcreator_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func newAttemptRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewTestAttemptController(service.NewScoringService(), nil)

	router := gin.New()
	router.POST("/api/testAttempt", c.CalculateResult)
	return router
}

func TestCalculateResultEndpoint(t *testing.T) {
	router := newAttemptRouter()

	body := `{
		"TestId": 3,
		"Title": "Sample",
		"TestAttemptEntries": [
			{
				"Question": {"Id": 1, "Text": "Q1"},
				"Answers": [
					{"Id": 10, "Text": "right", "Value": 2, "Checked": true},
					{"Id": 11, "Text": "wrong", "Value": -1, "Checked": false}
				]
			}
		]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testAttempt", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	// 响应字段名必须与旧客户端逐位一致
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	for _, key := range []string{"TestId", "Title", "Score", "MaximalPossibleScore"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("response missing field %q, body = %s", key, w.Body.String())
		}
	}

	var result service.TestAttemptResultViewModel
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.Score != 2 || result.MaximalPossibleScore != 2 {
		t.Errorf("score = (%d/%d), want (2/2)", result.Score, result.MaximalPossibleScore)
	}
}

func TestCalculateResultEndpointBadBody(t *testing.T) {
	router := newAttemptRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/testAttempt", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("error body = %q, want empty", w.Body.String())
	}
}
