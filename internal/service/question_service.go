package service

import (
	"testcreator_backend/internal/model"
	"testcreator_backend/internal/repository"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	return s.Repo.Get(id)
}

func (s *QuestionService) ListByTest(testID uint) ([]model.Question, error) {
	return s.Repo.ListByTest(testID)
}

func (s *QuestionService) Create(question *model.Question) (*model.Question, error) {
	if err := s.Repo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Update(question *model.Question) (*model.Question, error) {
	return s.Repo.Update(question)
}

func (s *QuestionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
