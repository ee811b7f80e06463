package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestIssueAndParse(t *testing.T) {
	token, err := IssueToken("secret", "user-1", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}

	userID, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}
	if userID != "user-1" {
		t.Errorf("Expected subject 'user-1', got %q", userID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", "user-1", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}
	if _, err := ParseToken("other", token); err == nil {
		t.Fatal("Expected an error for wrong secret, got nil")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := IssueToken("secret", "user-1", -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error issuing token, got %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("Expected an error for expired token, got nil")
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", Middleware("secret"), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user": UserID(c)})
		})
		return r
	}

	t.Run("ValidToken", func(t *testing.T) {
		token, err := IssueToken("secret", "user-1", time.Hour)
		if err != nil {
			t.Fatalf("Expected no error issuing token, got %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", w.Code)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", w.Code)
		}
	})
}
