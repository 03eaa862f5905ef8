package repository

import (
	"testcreator_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Get(id uint) (*model.Result, error) {
	var result model.Result
	err := r.DB.First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) ListByTest(testID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("test_id = ?", testID).Find(&results).Error
	return results, err
}

func (r *ResultRepository) Create(result *model.Result) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) Update(result *model.Result) (*model.Result, error) {
	existing, err := r.Get(result.ID)
	if err != nil {
		return nil, err
	}

	existing.Text = result.Text
	existing.Notes = result.Notes
	existing.MinValue = result.MinValue
	existing.MaxValue = result.MaxValue
	existing.Type = result.Type
	existing.Flags = result.Flags

	if err := r.DB.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *ResultRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.Result{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
