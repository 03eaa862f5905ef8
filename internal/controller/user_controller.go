package controller

import (
	"errors"
	"net/http"

	"testcreator_backend/internal/model"
	"testcreator_backend/internal/service"
	"testcreator_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// RegisterViewModel 注册请求体。密码只进不出。
type RegisterViewModel struct {
	UserName string `json:"UserName" binding:"required"`
	Email    string `json:"Email" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

// Register godoc
// @Summary 注册用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body RegisterViewModel true "注册信息"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string "用户名或邮箱已占用"
// @Router /api/user [post]
func (c *UserController) Register(ctx *gin.Context) {
	var vm RegisterViewModel
	if err := ctx.ShouldBindJSON(&vm); err != nil {
		util.BadRequest(ctx)
		return
	}

	user := &model.User{
		Name:     vm.UserName,
		Email:    vm.Email,
		Password: vm.Password,
	}
	if err := c.Service.Register(user); err != nil {
		switch {
		case errors.Is(err, util.ErrUserExists):
			util.BadRequestMessage(ctx, "User with this name already exists")
		case errors.Is(err, util.ErrEmailRegistered):
			util.BadRequestMessage(ctx, "Email address is already registered")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Me godoc
// @Summary 当前登录用户
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.User
// @Failure 401 "未登录"
// @Router /api/user/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.Service.FindByID(claims.UserID())
	if err != nil {
		util.Unauthorized(ctx)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
