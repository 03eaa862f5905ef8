package util

import (
	"strconv"
	"time"

	"testcreator_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims 访问令牌载荷：sub 为用户 ID，jti 每次签发唯一。
type Claims struct {
	jwt.RegisteredClaims
}

// UserID 解析 Subject 中的用户 ID，解析失败返回 0。
func (c *Claims) UserID() uint {
	id, _ := strconv.ParseUint(c.Subject, 10, 32)
	return uint(id)
}

// GenerateAccessToken 构造并签名访问令牌（HS256）。
// iss/aud 来自配置并随载荷签名，验证时按相同值校验。
func GenerateAccessToken(userID uint, cfg *config.JWTConfig) (string, error) {
	if userID == 0 {
		return "", ErrInvalidArgument
	}

	now := time.Now().UTC()
	expiration := time.Duration(cfg.TokenExpirationMinutes) * time.Minute

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.New().String(),
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Key))
}

// ParseAccessToken 验证签名、签发者与受众，返回载荷。
func ParseAccessToken(tokenString string, cfg *config.JWTConfig) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.Key), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
