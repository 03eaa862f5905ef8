package controller

import (
	"errors"
	"fmt"
	"net/http"

	"testcreator_backend/internal/model"
	"testcreator_backend/internal/service"
	"testcreator_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResultController struct {
	Service *service.ResultService
}

func NewResultController(svc *service.ResultService) *ResultController {
	return &ResultController{Service: svc}
}

// List godoc
// @Summary 按试卷列出分数段寄语
// @Tags 寄语
// @Produce json
// @Param testId query int true "试卷 ID"
// @Success 200 {array} model.Result
// @Router /api/result [get]
func (c *ResultController) List(ctx *gin.Context) {
	testID := util.MustParseUint(ctx.Query("testId"))

	results, err := c.Service.ListByTest(testID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// Get godoc
// @Summary 获取分数段寄语
// @Tags 寄语
// @Produce json
// @Param id path int true "寄语 ID"
// @Success 200 {object} model.Result
// @Failure 404 "寄语不存在"
// @Router /api/result/{id} [get]
func (c *ResultController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	result, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Result with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Post godoc
// @Summary 新建分数段寄语
// @Tags 寄语
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Result true "寄语"
// @Success 200 {object} model.Result
// @Failure 400 "请求体缺失"
// @Router /api/result [post]
func (c *ResultController) Post(ctx *gin.Context) {
	var result model.Result
	if err := ctx.ShouldBindJSON(&result); err != nil {
		util.BadRequest(ctx)
		return
	}

	created, err := c.Service.Create(&result)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// Put godoc
// @Summary 更新分数段寄语
// @Tags 寄语
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Result true "寄语"
// @Success 200 {object} model.Result
// @Failure 404 "寄语不存在"
// @Router /api/result [put]
func (c *ResultController) Put(ctx *gin.Context) {
	var result model.Result
	if err := ctx.ShouldBindJSON(&result); err != nil {
		util.BadRequest(ctx)
		return
	}

	updated, err := c.Service.Update(&result)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Error during updating result with identifier %d", result.ID))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary 删除分数段寄语
// @Tags 寄语
// @Security ApiKeyAuth
// @Param id path int true "寄语 ID"
// @Success 204
// @Failure 404 "寄语不存在"
// @Router /api/result/{id} [delete]
func (c *ResultController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Result with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
