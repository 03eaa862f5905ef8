package service

import (
	"testcreator_backend/internal/model"
	"testcreator_backend/internal/repository"
)

type AnswerService struct {
	Repo *repository.AnswerRepository
}

func NewAnswerService(repo *repository.AnswerRepository) *AnswerService {
	return &AnswerService{Repo: repo}
}

func (s *AnswerService) Get(id uint) (*model.Answer, error) {
	return s.Repo.Get(id)
}

func (s *AnswerService) ListByQuestion(questionID uint) ([]model.Answer, error) {
	return s.Repo.ListByQuestion(questionID)
}

func (s *AnswerService) Create(answer *model.Answer) (*model.Answer, error) {
	if err := s.Repo.Create(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) Update(answer *model.Answer) (*model.Answer, error) {
	return s.Repo.Update(answer)
}

func (s *AnswerService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
