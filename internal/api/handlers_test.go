package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kondate/internal/app"
	"kondate/internal/auth"
	"kondate/internal/config"
	"kondate/internal/database"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.New(dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testSecret
	cfg.Database.Path = dbPath

	application := app.New(db, nil, zap.NewNop())
	return NewRouter(cfg, application, zap.NewNop())
}

func authedRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, err := auth.IssueToken(testSecret, "user-1", time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func do(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func saveTestSettings(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := do(router, authedRequest(t, http.MethodPut, "/api/v1/settings", map[string]any{
		"family_size": "2",
		"family_mode": "normal",
	}))
	if w.Code != http.StatusNoContent {
		t.Fatalf("Failed to save settings: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestHealthzNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestGeneratePlanEndpoint(t *testing.T) {
	router := newTestRouter(t)
	saveTestSettings(t, router)

	t.Run("Created", func(t *testing.T) {
		w := do(router, authedRequest(t, http.MethodPost, "/api/v1/plans", map[string]string{
			"start_date": "2026-03-02",
			"end_date":   "2026-03-08",
		}))
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var plan struct {
			Menu         []json.RawMessage `json:"menu"`
			ShoppingList []json.RawMessage `json:"shopping_list"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
			t.Fatalf("Failed to decode plan: %v", err)
		}
		if len(plan.Menu) != 7 {
			t.Errorf("Expected 7 days, got %d", len(plan.Menu))
		}
		if len(plan.ShoppingList) == 0 {
			t.Error("Expected a non-empty shopping list")
		}
	})

	t.Run("BadDateFormat", func(t *testing.T) {
		w := do(router, authedRequest(t, http.MethodPost, "/api/v1/plans", map[string]string{
			"start_date": "03/02/2026",
			"end_date":   "2026-03-08",
		}))
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("RangeTooLong", func(t *testing.T) {
		w := do(router, authedRequest(t, http.MethodPost, "/api/v1/plans", map[string]string{
			"start_date": "2026-03-02",
			"end_date":   "2026-04-15",
		}))
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
		var body errorBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode error body: %v", err)
		}
		if body.Code != "invalid_request" {
			t.Errorf("Expected code invalid_request, got %q", body.Code)
		}
	})
}

func TestGeneratePlanAllVetoed(t *testing.T) {
	router := newTestRouter(t)
	saveTestSettings(t, router)

	w := do(router, authedRequest(t, http.MethodPost, "/api/v1/family", map[string]string{
		"name":     "太郎",
		"dislikes": "豚肉 鶏肉 合いびき肉 豚ひき肉 鶏もも肉 鶏胸肉 卵 木綿豆腐 鮭 キャベツ 玉ねぎ レタス",
	}))
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to add member: %d %s", w.Code, w.Body.String())
	}

	w = do(router, authedRequest(t, http.MethodPost, "/api/v1/plans", map[string]string{
		"start_date": "2026-03-02",
		"end_date":   "2026-03-04",
	}))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d: %s", w.Code, w.Body.String())
	}
	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "no_eligible_recipe" {
		t.Errorf("Expected code no_eligible_recipe, got %q", body.Code)
	}
}

func TestDayMenuNotFound(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, authedRequest(t, http.MethodGet, "/api/v1/plans/days/2026-03-02", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestInventoryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, authedRequest(t, http.MethodPut, "/api/v1/inventory", map[string]any{
		"name": "玉ねぎ", "qty": 3, "unit": "個",
	}))
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
	}

	w = do(router, authedRequest(t, http.MethodGet, "/api/v1/inventory", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var resp struct {
		Items []struct {
			Name string  `json:"name"`
			Qty  float64 `json:"qty"`
			Unit string  `json:"unit"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "玉ねぎ" || resp.Items[0].Qty != 3 {
		t.Errorf("Unexpected inventory: %+v", resp.Items)
	}

	w = do(router, authedRequest(t, http.MethodDelete, "/api/v1/inventory?name=玉ねぎ&unit=個", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
}

func TestMarkCookedValidation(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, authedRequest(t, http.MethodPost, "/api/v1/history/cooked", map[string]any{
		"dish_name":   "カレーライス",
		"cooked_date": "2026-03-02",
		"rating":      map[string]int{"taste_rating": 9, "cooking_time_rating": 3, "repeat_desire": 3},
	}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an out-of-range rating, got %d: %s", w.Code, w.Body.String())
	}
}
