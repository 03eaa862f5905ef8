package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"testcreator_backend/internal/model"
	"testcreator_backend/internal/repository"
	"testcreator_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheTTL = 30 * time.Second

// RoleResolver 按 ID 解析用户，授权判定用。
type RoleResolver interface {
	FindByID(id uint) (*model.User, error)
}

// TestService 试卷目录与增删改。非随机排序的目录查询走 Redis 短缓存，
// 目录变更时整体失效并通过 TestsHub 广播。
type TestService struct {
	Repo  *repository.TestRepository
	Users RoleResolver
	Redis *redis.Client
	Hub   *TestsHub
}

func NewTestService(repo *repository.TestRepository, users RoleResolver, rdb *redis.Client, hub *TestsHub) *TestService {
	return &TestService{
		Repo:  repo,
		Users: users,
		Redis: rdb,
		Hub:   hub,
	}
}

func (s *TestService) Get(id uint) (*model.Test, error) {
	return s.Repo.Get(id)
}

func (s *TestService) GetWithQuestions(id uint) (*model.Test, error) {
	return s.Repo.GetWithQuestions(id)
}

// List 按排序方式列出目录。随机排序每次都要落库，不缓存。
func (s *TestService) List(ctx context.Context, order repository.TestsOrder, size int) ([]model.Test, error) {
	if order == repository.TestsOrderRandom || s.Redis == nil {
		return s.Repo.ListByOrder(order, size)
	}

	key := fmt.Sprintf("catalog:%d:%d", order, size)
	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var tests []model.Test
		if err := json.Unmarshal([]byte(cached), &tests); err == nil {
			return tests, nil
		}
	}

	tests, err := s.Repo.ListByOrder(order, size)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(tests); err == nil {
		if err := s.Redis.Set(ctx, key, payload, catalogCacheTTL).Err(); err != nil {
			logger.Log.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return tests, nil
}

func (s *TestService) Search(text string, size int) ([]model.Test, error) {
	return s.Repo.Search(text, size)
}

func (s *TestService) Create(test *model.Test, authorID uint) (*model.Test, error) {
	test.UserID = authorID
	if err := s.Repo.Create(test); err != nil {
		return nil, err
	}

	s.invalidateCatalog()
	s.Hub.NotifyTestCreated(test.ID)
	return test, nil
}

func (s *TestService) Update(test *model.Test) (*model.Test, error) {
	updated, err := s.Repo.Update(test)
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog()
	return updated, nil
}

func (s *TestService) IncrementViewCount(id uint) error {
	return s.Repo.IncrementViewCount(id)
}

func (s *TestService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog()
	s.Hub.NotifyTestRemoved(id)
	return nil
}

// CanModifyTest 授权判定：作者本人或管理员可以修改/删除试卷。
// 显式的 (actor, resource) 谓词，角色从存储解析而非信任令牌内容。
func (s *TestService) CanModifyTest(actorID uint, test *model.Test) bool {
	if actorID == 0 || test == nil {
		return false
	}
	if test.UserID == actorID {
		return true
	}

	actor, err := s.Users.FindByID(actorID)
	if err != nil {
		return false
	}
	return actor.Role == model.Admin
}

func (s *TestService) invalidateCatalog() {
	if s.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	iter := s.Redis.Scan(ctx, 0, "catalog:*", 100).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
