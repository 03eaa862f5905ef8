package controller

import (
	"errors"
	"net/http"

	"testcreator_backend/internal/service"
	"testcreator_backend/internal/util"
	"testcreator_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type TokenController struct {
	TokenService *service.TokenService
}

func NewTokenController(tokenService *service.TokenService) *TokenController {
	return &TokenController{TokenService: tokenService}
}

// Auth godoc
// @Summary 签发访问令牌
// @Description 密码授权或刷新令牌授权，返回访问令牌与新的刷新令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.TokenRequest true "授权请求"
// @Success 200 {object} service.TokenResponse
// @Failure 400 "请求体缺失"
// @Failure 401 "认证失败"
// @Router /api/token/auth [post]
func (c *TokenController) Auth(ctx *gin.Context) {
	var req service.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx)
		return
	}

	resp, err := c.TokenService.Auth(&req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidArgument):
			util.BadRequest(ctx)
		case errors.Is(err, util.ErrInvalidCredentials),
			errors.Is(err, util.ErrInvalidRefreshToken),
			errors.Is(err, util.ErrUnknownGrantType):
			util.Unauthorized(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.TokensIssued.WithLabelValues(req.GrantType).Inc()
	ctx.JSON(http.StatusOK, resp)
}
