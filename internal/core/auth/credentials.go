package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// デモ用の固定認証情報です。
const (
	DefaultEmail    = "admin@bookxpert.com"
	DefaultPassword = "admin123"
	DefaultName     = "Admin User"
)

// Credentials はログインを許可する唯一の認証情報です。パスワードは bcrypt ハッシュで保持します。
type Credentials struct {
	Email        string
	Name         string
	passwordHash []byte
}

// NewCredentials は平文パスワードをハッシュ化して Credentials を生成します。cost が 0 以下なら bcrypt.DefaultCost を使います。
func NewCredentials(email, password, name string, cost int) (Credentials, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Credentials{}, fmt.Errorf("auth: email and password are required")
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Credentials{}, fmt.Errorf("auth: hash password: %w", err)
	}
	return Credentials{Email: email, Name: name, passwordHash: hash}, nil
}

// Verify はメールアドレスとパスワードの組が一致するかを返します。
func (c Credentials) Verify(email, password string) bool {
	if len(c.passwordHash) == 0 || email != c.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
}
