package controller

import (
	"errors"
	"fmt"
	"net/http"

	"testcreator_backend/internal/service"
	"testcreator_backend/internal/util"
	"testcreator_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TestAttemptController struct {
	ScoringService *service.ScoringService
	TestService    *service.TestService
}

func NewTestAttemptController(scoringService *service.ScoringService, testService *service.TestService) *TestAttemptController {
	return &TestAttemptController{
		ScoringService: scoringService,
		TestService:    testService,
	}
}

// Get godoc
// @Summary 获取答题视图
// @Description 返回试卷的全部题目与备选答案，供作答界面渲染
// @Tags 答题
// @Produce json
// @Param id path int true "试卷 ID"
// @Success 200 {object} service.TestAttemptViewModel
// @Failure 404 "试卷不存在"
// @Router /api/testAttempt/{id} [get]
func (c *TestAttemptController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	test, err := c.TestService.GetWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundError(ctx, fmt.Sprintf("Test with identifier %d was not found", id))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, service.BuildTestAttempt(test))
}

// CalculateResult godoc
// @Summary 提交答题并评分
// @Description 计算得分与可能的最高分
// @Tags 答题
// @Accept json
// @Produce json
// @Param body body service.TestAttemptViewModel true "答题记录"
// @Success 200 {object} service.TestAttemptResultViewModel
// @Failure 400 "请求体缺失"
// @Router /api/testAttempt [post]
func (c *TestAttemptController) CalculateResult(ctx *gin.Context) {
	var submission service.TestAttemptViewModel
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx)
		return
	}

	result, err := c.ScoringService.CalculateResult(&submission)
	if err != nil {
		if errors.Is(err, util.ErrInvalidArgument) {
			util.BadRequest(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	if result == nil {
		util.InternalServerError(ctx)
		return
	}

	monitoring.AttemptsScored.Inc()
	ctx.JSON(http.StatusOK, result)
}
