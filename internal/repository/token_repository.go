package repository

import (
	"testcreator_backend/internal/model"

	"gorm.io/gorm"
)

type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// FindForClient 按 (clientId, value) 精确匹配刷新令牌。
func (r *TokenRepository) FindForClient(clientID, value string) (*model.Token, error) {
	var token model.Token
	err := r.DB.Where("client_id = ? AND value = ?", clientID, value).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) Add(token *model.Token) error {
	return r.DB.Create(token).Error
}

func (r *TokenRepository) Remove(token *model.Token) error {
	return r.DB.Delete(token).Error
}

// Rotate 在同一事务中删除旧令牌并写入新令牌。按主键删除时校验
// 受影响行数：并发换发同一令牌时只有先删除者成功，后到者回滚。
func (r *TokenRepository) Rotate(old, fresh *model.Token) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Token{}, old.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(fresh).Error
	})
}
