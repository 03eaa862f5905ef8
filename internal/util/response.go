package util

import (
	"net/http"

	"testcreator_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构（健康检查等系统接口使用；
// 业务接口为兼容旧客户端直接返回视图模型，不做包装）。
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// BadRequest 空 400：请求体缺失或无法解析。
func BadRequest(c *gin.Context) {
	c.Status(http.StatusBadRequest)
}

func BadRequestMessage(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"Error": message})
}

// Unauthorized 空 401：认证失败、无效刷新令牌、未知授权类型。
func Unauthorized(c *gin.Context) {
	c.Status(http.StatusUnauthorized)
}

func NotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"Error": message})
}

// InternalServerError 空 500，不向调用方泄露内部细节。
func InternalServerError(c *gin.Context) {
	c.Status(http.StatusInternalServerError)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}
