package util

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUnknownGrantType    = errors.New("unknown grant type")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrUserExists          = errors.New("用户名已被注册")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
)
