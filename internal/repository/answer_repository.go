package repository

import (
	"testcreator_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Get(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *AnswerRepository) ListByQuestion(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("question_id = ?", questionID).Find(&answers).Error
	return answers, err
}

func (r *AnswerRepository) Create(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *AnswerRepository) Update(answer *model.Answer) (*model.Answer, error) {
	existing, err := r.Get(answer.ID)
	if err != nil {
		return nil, err
	}

	existing.Text = answer.Text
	existing.Value = answer.Value
	existing.Type = answer.Type
	existing.Flags = answer.Flags
	existing.Notes = answer.Notes

	if err := r.DB.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *AnswerRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.Answer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
