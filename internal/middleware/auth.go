package middleware

import (
	"strings"

	"testcreator_backend/internal/config"
	"testcreator_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// AuthMiddleware 强制认证：校验签名、签发者与受众，载荷写入上下文。
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseAccessToken(tokenString, &cfg.JWT)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware 可选认证：令牌有效则注入身份，否则按匿名继续。
// 匿名可读但登录后附带 UserCanEdit 等标记的接口使用。
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := util.ParseAccessToken(tokenString, &cfg.JWT); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}
