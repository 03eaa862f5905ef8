package service

import (
	"testcreator_backend/internal/model"
	"testcreator_backend/internal/repository"
)

type ResultService struct {
	Repo *repository.ResultRepository
}

func NewResultService(repo *repository.ResultRepository) *ResultService {
	return &ResultService{Repo: repo}
}

func (s *ResultService) Get(id uint) (*model.Result, error) {
	return s.Repo.Get(id)
}

func (s *ResultService) ListByTest(testID uint) ([]model.Result, error) {
	return s.Repo.ListByTest(testID)
}

func (s *ResultService) Create(result *model.Result) (*model.Result, error) {
	if err := s.Repo.Create(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) Update(result *model.Result) (*model.Result, error) {
	return s.Repo.Update(result)
}

func (s *ResultService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
