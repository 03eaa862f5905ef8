package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"testcreator_backend/internal/model"
	"testcreator_backend/internal/repository"
	"testcreator_backend/internal/service"
	"testcreator_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultQuerySize = 10

type TestController struct {
	Service *service.TestService
}

func NewTestController(svc *service.TestService) *TestController {
	return &TestController{Service: svc}
}

// TestViewModel 在实体之上附加请求方是否可编辑的标记。
// swagger:model TestViewModel
type TestViewModel struct {
	model.Test
	UserCanEdit bool `json:"UserCanEdit"`
}

func (c *TestController) toViewModel(ctx *gin.Context, test *model.Test) TestViewModel {
	vm := TestViewModel{Test: *test}
	if claims := util.GetUserFromContext(ctx); claims != nil {
		vm.UserCanEdit = c.Service.CanModifyTest(claims.UserID(), test)
	}
	return vm
}

// Get godoc
// @Summary 获取试卷
// @Tags 试卷
// @Produce json
// @Param id path int true "试卷 ID"
// @Success 200 {object} TestViewModel
// @Failure 404 "试卷不存在"
// @Router /api/test/{id} [get]
func (c *TestController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	test, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Test with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.toViewModel(ctx, test))
}

// List godoc
// @Summary 试卷目录
// @Description keyword 存在时按标题搜索，否则按 sorting 排序：
// @Description 0 随机，1 最新，2 按标题，3 最热
// @Tags 试卷
// @Produce json
// @Param sorting query int false "排序方式"
// @Param size query int false "数量上限" default(10)
// @Param keyword query string false "标题关键字"
// @Success 200 {array} TestViewModel
// @Failure 404 "排序参数非法"
// @Router /api/test [get]
func (c *TestController) List(ctx *gin.Context) {
	size := defaultQuerySize
	if s, err := strconv.Atoi(ctx.Query("size")); err == nil && s > 0 {
		size = s
	}

	if keyword := ctx.Query("keyword"); keyword != "" {
		tests, err := c.Service.Search(keyword, size)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, tests)
		return
	}

	sorting, err := strconv.Atoi(ctx.DefaultQuery("sorting", "0"))
	if err != nil || sorting < int(repository.TestsOrderRandom) || sorting > int(repository.TestsOrderMostViewed) {
		util.NotFoundError(ctx, fmt.Sprintf("Sorting parameter has wrong value: %s", ctx.Query("sorting")))
		return
	}

	tests, err := c.Service.List(ctx.Request.Context(), repository.TestsOrder(sorting), size)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// Search godoc
// @Summary 按标题搜索试卷
// @Tags 试卷
// @Produce json
// @Param num path int true "数量上限"
// @Param text query string false "搜索文本"
// @Success 200 {array} model.Test
// @Router /api/test/search/{num} [get]
func (c *TestController) Search(ctx *gin.Context) {
	num := int(util.MustParseUint(ctx.Param("num")))
	if num <= 0 {
		num = defaultQuerySize
	}

	tests, err := c.Service.Search(ctx.Query("text"), num)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// Post godoc
// @Summary 新建试卷
// @Tags 试卷
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Test true "试卷"
// @Success 200 {object} TestViewModel
// @Failure 400 "请求体缺失"
// @Router /api/test [post]
func (c *TestController) Post(ctx *gin.Context) {
	var test model.Test
	if err := ctx.ShouldBindJSON(&test); err != nil {
		util.BadRequest(ctx)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	created, err := c.Service.Create(&test, claims.UserID())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	vm := TestViewModel{Test: *created, UserCanEdit: true}
	ctx.JSON(http.StatusOK, vm)
}

// Put godoc
// @Summary 更新试卷
// @Description 仅作者或管理员可更新
// @Tags 试卷
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Test true "试卷"
// @Success 200 {object} TestViewModel
// @Failure 401 "非作者且非管理员"
// @Failure 404 "试卷不存在"
// @Router /api/test [put]
func (c *TestController) Put(ctx *gin.Context) {
	var test model.Test
	if err := ctx.ShouldBindJSON(&test); err != nil {
		util.BadRequest(ctx)
		return
	}

	existing, err := c.Service.Get(test.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Error during updating test with identifier %d", test.ID))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil || !c.Service.CanModifyTest(claims.UserID(), existing) {
		util.Unauthorized(ctx)
		return
	}

	updated, err := c.Service.Update(&test)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.toViewModel(ctx, updated))
}

// UpdateTestViewCountViewModel swagger:model
type UpdateTestViewCountViewModel struct {
	ID uint `json:"Id"`
}

// UpdateViewCount godoc
// @Summary 浏览计数加一
// @Tags 试卷
// @Accept json
// @Param body body UpdateTestViewCountViewModel true "试卷 ID"
// @Success 200
// @Failure 400 "请求体缺失"
// @Router /api/test [patch]
func (c *TestController) UpdateViewCount(ctx *gin.Context) {
	var req UpdateTestViewCountViewModel
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx)
		return
	}

	if err := c.Service.IncrementViewCount(req.ID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}

// Delete godoc
// @Summary 删除试卷
// @Description 仅作者或管理员可删除
// @Tags 试卷
// @Security ApiKeyAuth
// @Param id path int true "试卷 ID"
// @Success 204
// @Failure 401 "非作者且非管理员"
// @Router /api/test/{id} [delete]
func (c *TestController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	existing, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Test with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil || !c.Service.CanModifyTest(claims.UserID(), existing) {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
