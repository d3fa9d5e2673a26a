package auth

// User はログイン中のユーザーです。同時に存在するのは最大 1 件です。
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// State は認証状態を表します。
type State int

const (
	// StateUnknown は保存済みセッションをまだ読み込んでいない状態です。
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// LoginResult はログイン結果です。認証情報の不一致はエラーではなく Success=false で返します。
type LoginResult struct {
	Success bool
	Error   string
}
