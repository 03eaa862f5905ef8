package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"testcreator_backend/internal/config"
	"testcreator_backend/internal/model"
	"testcreator_backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type stubUsers struct {
	user *model.User
}

func (s *stubUsers) FindByName(name string) (*model.User, error) {
	if s.user != nil && s.user.Name == name {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) FindByEmail(email string) (*model.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) FindByID(id uint) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) CheckPassword(user *model.User, plaintext string) bool {
	return user.Password == plaintext
}

type stubTokens struct {
	added []*model.Token
}

func (s *stubTokens) FindForClient(clientID, value string) (*model.Token, error) {
	for _, t := range s.added {
		if t.ClientID == clientID && t.Value == value {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTokens) Add(token *model.Token) error {
	s.added = append(s.added, token)
	return nil
}

func (s *stubTokens) Rotate(old, fresh *model.Token) error {
	return s.Add(fresh)
}

func newTokenRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Key:                    "0123456789abcdef0123456789abcdef",
			Issuer:                 "http://tests.local",
			Audience:               "http://tests.local",
			TokenExpirationMinutes: 30,
		},
	}
	users := &stubUsers{user: &model.User{
		BaseModel: model.BaseModel{ID: 1},
		Name:      "alice",
		Email:     "alice@example.com",
		Password:  "secret",
	}}
	c := NewTokenController(service.NewTokenService(users, &stubTokens{}, cfg))

	router := gin.New()
	router.POST("/api/token/auth", c.Auth)
	return router
}

func postToken(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/token/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTokenEndpointPasswordGrant(t *testing.T) {
	router := newTokenRouter()

	w := postToken(t, router, `{"GrantType":"password","ClientId":"web","Username":"alice","Password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	// 响应字段名必须与旧客户端逐位一致
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	for _, key := range []string{"Token", "Expiration", "RefreshToken"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("response missing field %q, body = %s", key, w.Body.String())
		}
	}
}

func TestTokenEndpointFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "wrong password", body: `{"GrantType":"password","ClientId":"web","Username":"alice","Password":"nope"}`, code: http.StatusUnauthorized},
		{name: "unknown grant type", body: `{"GrantType":"implicit","ClientId":"web"}`, code: http.StatusUnauthorized},
		{name: "stale refresh token", body: `{"GrantType":"refresh_token","ClientId":"web","RefreshToken":"deadbeef"}`, code: http.StatusUnauthorized},
		{name: "malformed body", body: `{broken`, code: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTokenRouter()

			w := postToken(t, router, tc.body)
			if w.Code != tc.code {
				t.Fatalf("status = %d, want %d", w.Code, tc.code)
			}
			if w.Body.Len() != 0 {
				t.Errorf("error body = %q, want empty", w.Body.String())
			}
		})
	}
}
