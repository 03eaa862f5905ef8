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

type AnswerController struct {
	Service *service.AnswerService
}

func NewAnswerController(svc *service.AnswerService) *AnswerController {
	return &AnswerController{Service: svc}
}

// List godoc
// @Summary 按题目列出选项
// @Tags 选项
// @Produce json
// @Param questionId query int true "题目 ID"
// @Success 200 {array} model.Answer
// @Router /api/answer [get]
func (c *AnswerController) List(ctx *gin.Context) {
	questionID := util.MustParseUint(ctx.Query("questionId"))

	answers, err := c.Service.ListByQuestion(questionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// Get godoc
// @Summary 获取选项
// @Tags 选项
// @Produce json
// @Param id path int true "选项 ID"
// @Success 200 {object} model.Answer
// @Failure 404 "选项不存在"
// @Router /api/answer/{id} [get]
func (c *AnswerController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	answer, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Answer with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// Post godoc
// @Summary 新建选项
// @Tags 选项
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Answer true "选项"
// @Success 200 {object} model.Answer
// @Failure 400 "请求体缺失"
// @Router /api/answer [post]
func (c *AnswerController) Post(ctx *gin.Context) {
	var answer model.Answer
	if err := ctx.ShouldBindJSON(&answer); err != nil {
		util.BadRequest(ctx)
		return
	}

	created, err := c.Service.Create(&answer)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// Put godoc
// @Summary 更新选项
// @Tags 选项
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Answer true "选项"
// @Success 200 {object} model.Answer
// @Failure 404 "选项不存在"
// @Router /api/answer [put]
func (c *AnswerController) Put(ctx *gin.Context) {
	var answer model.Answer
	if err := ctx.ShouldBindJSON(&answer); err != nil {
		util.BadRequest(ctx)
		return
	}

	updated, err := c.Service.Update(&answer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Error during updating answer with identifier %d", answer.ID))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary 删除选项
// @Tags 选项
// @Security ApiKeyAuth
// @Param id path int true "选项 ID"
// @Success 204
// @Failure 404 "选项不存在"
// @Router /api/answer/{id} [delete]
func (c *AnswerController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Answer with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
