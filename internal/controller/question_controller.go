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

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// List godoc
// @Summary 按试卷列出题目
// @Tags 题目
// @Produce json
// @Param testId query int true "试卷 ID"
// @Success 200 {array} model.Question
// @Router /api/question [get]
func (c *QuestionController) List(ctx *gin.Context) {
	testID := util.MustParseUint(ctx.Query("testId"))

	questions, err := c.Service.ListByTest(testID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary 获取题目
// @Tags 题目
// @Produce json
// @Param id path int true "题目 ID"
// @Success 200 {object} model.Question
// @Failure 404 "题目不存在"
// @Router /api/question/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Question with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Post godoc
// @Summary 新建题目
// @Tags 题目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Question true "题目"
// @Success 200 {object} model.Question
// @Failure 400 "请求体缺失"
// @Router /api/question [post]
func (c *QuestionController) Post(ctx *gin.Context) {
	var question model.Question
	if err := ctx.ShouldBindJSON(&question); err != nil {
		util.BadRequest(ctx)
		return
	}

	created, err := c.Service.Create(&question)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// Put godoc
// @Summary 更新题目
// @Tags 题目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Question true "题目"
// @Success 200 {object} model.Question
// @Failure 404 "题目不存在"
// @Router /api/question [put]
func (c *QuestionController) Put(ctx *gin.Context) {
	var question model.Question
	if err := ctx.ShouldBindJSON(&question); err != nil {
		util.BadRequest(ctx)
		return
	}

	updated, err := c.Service.Update(&question)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Error during updating question with identifier %d", question.ID))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary 删除题目
// @Tags 题目
// @Security ApiKeyAuth
// @Param id path int true "题目 ID"
// @Success 204
// @Failure 404 "题目不存在"
// @Router /api/question/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Question with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
