package repository

import (
	"testcreator_backend/internal/model"

	"gorm.io/gorm"
)

// TestsOrder 目录排序方式，数值与旧客户端的 sorting 参数一致。
type TestsOrder int

const (
	TestsOrderRandom TestsOrder = iota
	TestsOrderLatest
	TestsOrderByTitle
	TestsOrderMostViewed
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) Get(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// GetWithQuestions 预加载题目与答案，供答题视图使用。
func (r *TestRepository) GetWithQuestions(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.Preload("Questions.Answers").First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestRepository) ListByOrder(order TestsOrder, size int) ([]model.Test, error) {
	var tests []model.Test

	q := r.DB.Model(&model.Test{})
	switch order {
	case TestsOrderRandom:
		q = q.Order("RAND()")
	case TestsOrderLatest:
		q = q.Order("created_at DESC")
	case TestsOrderByTitle:
		q = q.Order("title ASC")
	case TestsOrderMostViewed:
		q = q.Order("view_count DESC")
	}

	err := q.Limit(size).Find(&tests).Error
	return tests, err
}

func (r *TestRepository) Search(text string, size int) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Where("title LIKE ?", "%"+text+"%").Limit(size).Find(&tests).Error
	return tests, err
}

func (r *TestRepository) Create(test *model.Test) error {
	return r.DB.Create(test).Error
}

func (r *TestRepository) Update(test *model.Test) (*model.Test, error) {
	existing, err := r.Get(test.ID)
	if err != nil {
		return nil, err
	}

	existing.Title = test.Title
	existing.Description = test.Description
	existing.Text = test.Text
	existing.Notes = test.Notes
	existing.ViewCount = test.ViewCount

	if err := r.DB.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *TestRepository) IncrementViewCount(id uint) error {
	res := r.DB.Model(&model.Test{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TestRepository) Delete(id uint) error {
	// 题目与答案由外键级联删除
	res := r.DB.Delete(&model.Test{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
