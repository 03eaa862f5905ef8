package service

import (
	"errors"
	"testing"

	"testcreator_backend/internal/config"
	"testcreator_backend/internal/model"
	"testcreator_backend/internal/util"

	"gorm.io/gorm"
)

// 内存版身份与令牌存储，密码明文比较即可

type fakeCredentialStore struct {
	users []*model.User
}

func (s *fakeCredentialStore) FindByName(name string) (*model.User, error) {
	for _, u := range s.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeCredentialStore) FindByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeCredentialStore) FindByID(id uint) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeCredentialStore) CheckPassword(user *model.User, plaintext string) bool {
	return user.Password == plaintext
}

type fakeRefreshTokenStore struct {
	tokens []*model.Token
	nextID uint

	// 置位后下一次 Rotate 在删除旧令牌前将其移除，模拟并发换发竞争
	loseNextRotate bool
}

func (s *fakeRefreshTokenStore) FindForClient(clientID, value string) (*model.Token, error) {
	for _, t := range s.tokens {
		if t.ClientID == clientID && t.Value == value {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRefreshTokenStore) Add(token *model.Token) error {
	s.nextID++
	token.ID = s.nextID
	s.tokens = append(s.tokens, token)
	return nil
}

func (s *fakeRefreshTokenStore) Rotate(old, fresh *model.Token) error {
	if s.loseNextRotate {
		s.loseNextRotate = false
		for i, t := range s.tokens {
			if t.ID == old.ID {
				s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
				break
			}
		}
	}
	for i, t := range s.tokens {
		if t.ID == old.ID {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			return s.Add(fresh)
		}
	}
	// 旧令牌已被并发换发消费
	return gorm.ErrRecordNotFound
}

func newTokenServiceForTest(users ...*model.User) (*TokenService, *fakeRefreshTokenStore) {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Key:                    "0123456789abcdef0123456789abcdef",
			Issuer:                 "http://tests.local",
			Audience:               "http://tests.local",
			TokenExpirationMinutes: 30,
		},
	}
	tokens := &fakeRefreshTokenStore{}
	return NewTokenService(&fakeCredentialStore{users: users}, tokens, cfg), tokens
}

func TestAuthPasswordGrant(t *testing.T) {
	alice := &model.User{BaseModel: model.BaseModel{ID: 1}, Name: "alice", Email: "alice@example.com", Password: "secret"}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "by user name", username: "alice", password: "secret"},
		{name: "by email fallback", username: "alice@example.com", password: "secret"},
		{name: "wrong password", username: "alice", password: "nope", wantErr: util.ErrInvalidCredentials},
		{name: "unknown user", username: "bob", password: "secret", wantErr: util.ErrInvalidCredentials},
		{name: "unknown email", username: "bob@example.com", password: "secret", wantErr: util.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, tokens := newTokenServiceForTest(alice)

			resp, err := svc.Auth(&TokenRequest{
				GrantType: "password",
				ClientID:  "web",
				Username:  tc.username,
				Password:  tc.password,
			})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Auth() error = %v, want %v", err, tc.wantErr)
				}
				if len(tokens.tokens) != 0 {
					t.Errorf("failed grant persisted %d refresh tokens", len(tokens.tokens))
				}
				return
			}
			if err != nil {
				t.Fatalf("Auth() error = %v", err)
			}
			if resp.Token == "" {
				t.Error("Auth() returned empty access token")
			}
			if resp.Expiration != 30 {
				t.Errorf("Expiration = %d, want 30", resp.Expiration)
			}
			if len(resp.RefreshToken) != 32 {
				t.Errorf("refresh token length = %d, want 32", len(resp.RefreshToken))
			}
			if len(tokens.tokens) != 1 || tokens.tokens[0].Value != resp.RefreshToken {
				t.Error("issued refresh token was not persisted")
			}
		})
	}
}

func TestAuthRefreshGrantRotation(t *testing.T) {
	alice := &model.User{BaseModel: model.BaseModel{ID: 1}, Name: "alice", Password: "secret"}
	svc, tokens := newTokenServiceForTest(alice)

	first, err := svc.Auth(&TokenRequest{GrantType: "password", ClientID: "web", Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("password grant error = %v", err)
	}

	second, err := svc.Auth(&TokenRequest{GrantType: "refresh_token", ClientID: "web", RefreshToken: first.RefreshToken})
	if err != nil {
		t.Fatalf("refresh grant error = %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Error("rotation returned the same refresh token value")
	}
	if len(tokens.tokens) != 1 {
		t.Fatalf("store holds %d tokens after rotation, want 1", len(tokens.tokens))
	}
	if tokens.tokens[0].Value != second.RefreshToken {
		t.Error("store holds a value other than the fresh token")
	}

	// 旧令牌单次有效，重放必须失败
	if _, err := svc.Auth(&TokenRequest{GrantType: "refresh_token", ClientID: "web", RefreshToken: first.RefreshToken}); !errors.Is(err, util.ErrInvalidRefreshToken) {
		t.Errorf("replayed refresh token error = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestAuthRefreshGrantWrongClient(t *testing.T) {
	alice := &model.User{BaseModel: model.BaseModel{ID: 1}, Name: "alice", Password: "secret"}
	svc, _ := newTokenServiceForTest(alice)

	first, err := svc.Auth(&TokenRequest{GrantType: "password", ClientID: "web", Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("password grant error = %v", err)
	}

	_, err = svc.Auth(&TokenRequest{GrantType: "refresh_token", ClientID: "mobile", RefreshToken: first.RefreshToken})
	if !errors.Is(err, util.ErrInvalidRefreshToken) {
		t.Errorf("cross-client refresh error = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestAuthRefreshGrantRaceLoser(t *testing.T) {
	alice := &model.User{BaseModel: model.BaseModel{ID: 1}, Name: "alice", Password: "secret"}
	svc, tokens := newTokenServiceForTest(alice)

	first, err := svc.Auth(&TokenRequest{GrantType: "password", ClientID: "web", Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("password grant error = %v", err)
	}

	// 模拟并发竞争：令牌查得到，但轮换前已被另一请求消费
	tokens.loseNextRotate = true

	_, err = svc.Auth(&TokenRequest{GrantType: "refresh_token", ClientID: "web", RefreshToken: first.RefreshToken})
	if !errors.Is(err, util.ErrInvalidRefreshToken) {
		t.Errorf("race-losing refresh error = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestAuthUnknownGrantType(t *testing.T) {
	svc, _ := newTokenServiceForTest()

	for _, grant := range []string{"", "client_credentials", "PASSWORD"} {
		if _, err := svc.Auth(&TokenRequest{GrantType: grant}); !errors.Is(err, util.ErrUnknownGrantType) {
			t.Errorf("Auth(GrantType=%q) error = %v, want ErrUnknownGrantType", grant, err)
		}
	}

	if _, err := svc.Auth(nil); !errors.Is(err, util.ErrInvalidArgument) {
		t.Errorf("Auth(nil) error = %v, want ErrInvalidArgument", err)
	}
}
