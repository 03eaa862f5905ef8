package service

import (
	"errors"
	"strings"

	"testcreator_backend/internal/config"
	"testcreator_backend/internal/model"
	"testcreator_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialStore 身份存储。密码校验完全委托给实现方。
type CredentialStore interface {
	FindByName(name string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	CheckPassword(user *model.User, plaintext string) bool
}

// RefreshTokenStore 刷新令牌存储。Rotate 必须原子地完成旧令牌删除
// 与新令牌写入。
type RefreshTokenStore interface {
	FindForClient(clientID, value string) (*model.Token, error)
	Add(token *model.Token) error
	Rotate(old, fresh *model.Token) error
}

// TokenRequest 令牌端点请求体，字段名与旧客户端逐位兼容。
// swagger:model TokenRequest
type TokenRequest struct {
	GrantType    string `json:"GrantType"`
	ClientID     string `json:"ClientId"`
	Username     string `json:"Username"`
	Password     string `json:"Password"`
	RefreshToken string `json:"RefreshToken"`
}

// swagger:model TokenResponse
type TokenResponse struct {
	Token        string `json:"Token"`
	Expiration   int    `json:"Expiration"`
	RefreshToken string `json:"RefreshToken"`
}

// TokenService 实现密码授权与刷新令牌授权两种流程。
// 刷新令牌一次性使用：每次换发即作废旧令牌。
type TokenService struct {
	Users  CredentialStore
	Tokens RefreshTokenStore
	Cfg    *config.Config
}

func NewTokenService(users CredentialStore, tokens RefreshTokenStore, cfg *config.Config) *TokenService {
	return &TokenService{
		Users:  users,
		Tokens: tokens,
		Cfg:    cfg,
	}
}

// Auth 按 GrantType 分发。未知类型按认证失败处理。
func (s *TokenService) Auth(req *TokenRequest) (*TokenResponse, error) {
	if req == nil {
		return nil, util.ErrInvalidArgument
	}

	switch req.GrantType {
	case "password":
		return s.passwordGrant(req)
	case "refresh_token":
		return s.refreshGrant(req)
	default:
		return nil, util.ErrUnknownGrantType
	}
}

// passwordGrant 先按用户名解析身份；未命中且标识形如邮箱时再按
// 邮箱解析。成功后签发新刷新令牌与访问令牌。
func (s *TokenService) passwordGrant(req *TokenRequest) (*TokenResponse, error) {
	user, err := s.Users.FindByName(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user == nil && strings.Contains(req.Username, "@") {
		user, err = s.Users.FindByEmail(req.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if user == nil || !s.Users.CheckPassword(user, req.Password) {
		return nil, util.ErrInvalidCredentials
	}

	refreshToken, err := s.generateRefreshToken(req.ClientID, user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.Tokens.Add(refreshToken); err != nil {
		return nil, err
	}

	return s.buildResponse(user.ID, refreshToken.Value)
}

// refreshGrant 换发：精确匹配 (ClientId, RefreshToken)，命中后原子地
// 用新令牌替换旧令牌。旧令牌自此永久失效。
func (s *TokenService) refreshGrant(req *TokenRequest) (*TokenResponse, error) {
	refreshToken, err := s.Tokens.FindForClient(req.ClientID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidRefreshToken
		}
		return nil, err
	}

	user, err := s.Users.FindByID(refreshToken.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidRefreshToken
		}
		return nil, err
	}

	fresh, err := s.generateRefreshToken(refreshToken.ClientID, refreshToken.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.Tokens.Rotate(refreshToken, fresh); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 并发换发竞争中落败，令牌已被另一次请求消费
			return nil, util.ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.buildResponse(user.ID, fresh.Value)
}

func (s *TokenService) generateRefreshToken(clientID string, userID uint) (*model.Token, error) {
	if clientID == "" || userID == 0 {
		return nil, util.ErrInvalidArgument
	}

	return &model.Token{
		ClientID: clientID,
		UserID:   userID,
		Type:     0,
		Value:    strings.ReplaceAll(uuid.New().String(), "-", ""),
	}, nil
}

func (s *TokenService) buildResponse(userID uint, refreshValue string) (*TokenResponse, error) {
	accessToken, err := util.GenerateAccessToken(userID, &s.Cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		Token:        accessToken,
		Expiration:   s.Cfg.JWT.TokenExpirationMinutes,
		RefreshToken: refreshValue,
	}, nil
}
