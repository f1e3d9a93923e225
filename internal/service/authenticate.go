// File: internal/service/authenticate.go
package service

import (
	"errors"

	"coffee-wifi/internal/model"
)

// ErrInvalidPassword 密碼比對失敗
var ErrInvalidPassword = errors.New("invalid password")

// AuthenticateUser 根據使用者結構和明文密碼驗證，成功回傳使用者
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidPassword
	}
	return &user, nil
}
