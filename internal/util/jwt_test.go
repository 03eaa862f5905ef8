package util

import (
	"errors"
	"testing"

	"testcreator_backend/internal/config"
)

func jwtTestConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Key:                    "0123456789abcdef0123456789abcdef",
		Issuer:                 "http://tests.local",
		Audience:               "http://tests.local",
		TokenExpirationMinutes: 30,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := jwtTestConfig()

	token, err := GenerateAccessToken(42, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ParseAccessToken(token, cfg)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}
	if got := claims.UserID(); got != 42 {
		t.Errorf("UserID() = %d, want 42", got)
	}
	if claims.ID == "" {
		t.Error("token has empty jti")
	}
}

func TestAccessTokenJTIUnique(t *testing.T) {
	cfg := jwtTestConfig()

	first, err := GenerateAccessToken(1, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	second, err := GenerateAccessToken(1, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	a, _ := ParseAccessToken(first, cfg)
	b, _ := ParseAccessToken(second, cfg)
	if a.ID == b.ID {
		t.Error("two tokens share the same jti")
	}
}

func TestAccessTokenZeroUserID(t *testing.T) {
	if _, err := GenerateAccessToken(0, jwtTestConfig()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GenerateAccessToken(0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestParseAccessTokenRejectsMismatch(t *testing.T) {
	cfg := jwtTestConfig()

	token, err := GenerateAccessToken(7, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *config.JWTConfig)
	}{
		{name: "wrong key", mutate: func(c *config.JWTConfig) { c.Key = "another-key-another-key-another!" }},
		{name: "wrong issuer", mutate: func(c *config.JWTConfig) { c.Issuer = "http://evil.local" }},
		{name: "wrong audience", mutate: func(c *config.JWTConfig) { c.Audience = "http://evil.local" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verify := *cfg
			tc.mutate(&verify)
			if _, err := ParseAccessToken(token, &verify); err == nil {
				t.Error("ParseAccessToken() accepted a mismatched token")
			}
		})
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := jwtTestConfig()
	cfg.TokenExpirationMinutes = -1

	token, err := GenerateAccessToken(7, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if _, err := ParseAccessToken(token, cfg); err == nil {
		t.Error("ParseAccessToken() accepted an expired token")
	}
}
