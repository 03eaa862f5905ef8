package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"testcreator_backend/internal/config"
	"testcreator_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func middlewareTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Key:                    "0123456789abcdef0123456789abcdef",
			Issuer:                 "http://tests.local",
			Audience:               "http://tests.local",
			TokenExpirationMinutes: 30,
		},
	}
}

func newProtectedRouter(cfg *config.Config, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := func(c *gin.Context) {
		if claims := util.GetUserFromContext(c); claims != nil {
			c.JSON(http.StatusOK, gin.H{"userId": claims.UserID()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": 0})
	}

	if optional {
		router.GET("/res", TryAuthMiddleware(cfg), handler)
	} else {
		router.GET("/res", AuthMiddleware(cfg), handler)
	}
	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/res", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := middlewareTestConfig()
	router := newProtectedRouter(cfg, false)

	token, err := util.GenerateAccessToken(42, &cfg.JWT)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	t.Run("valid token passes identity", func(t *testing.T) {
		w := get(router, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body := w.Body.String(); body != `{"userId":42}` {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("missing header rejected with empty body", func(t *testing.T) {
		w := get(router, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("error body = %q, want empty", w.Body.String())
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := get(router, "Bearer not.a.token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})
}

func TestTryAuthMiddleware(t *testing.T) {
	cfg := middlewareTestConfig()
	router := newProtectedRouter(cfg, true)

	token, err := util.GenerateAccessToken(7, &cfg.JWT)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	t.Run("anonymous continues", func(t *testing.T) {
		w := get(router, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body := w.Body.String(); body != `{"userId":0}` {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		w := get(router, "Bearer "+token)
		if body := w.Body.String(); body != `{"userId":7}` {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("invalid token treated as anonymous", func(t *testing.T) {
		w := get(router, "Bearer junk")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}
