package auth

import "errors"

// InvalidCredentialsMessage はログイン失敗時に利用者へ返す文言です。
const InvalidCredentialsMessage = "Invalid email or password"

var (
	// ErrSessionNotFound はセッションが保存されていない場合に返却されます。
	ErrSessionNotFound = errors.New("auth: session not found")
	// ErrInvalidCredentials はメールアドレスまたはパスワードが一致しない場合に返却されます。
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidUser は保存しようとしたユーザーが不正な場合に返却されます。
	ErrInvalidUser = errors.New("auth: invalid user")
)
