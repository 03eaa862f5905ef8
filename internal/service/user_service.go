package service

import (
	"errors"

	"testcreator_backend/internal/model"
	"testcreator_backend/internal/repository"
	"testcreator_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

// Register 注册普通用户。用户名与邮箱都要求唯一。
func (s *UserService) Register(user *model.User) error {
	if _, err := s.Repo.FindByName(user.Name); err == nil {
		return util.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.Repo.FindByEmail(user.Email); err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user.Role = model.RegisteredUser
	return s.Repo.Create(user)
}

func (s *UserService) FindByID(id uint) (*model.User, error) {
	return s.Repo.FindByID(id)
}
