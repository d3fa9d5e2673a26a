package employee

import (
	"sort"
	"strings"
)

// ステータスフィルタの値です。空文字列は絞り込みなしを表します。
const (
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"
)

// DefaultRecentLimit はダッシュボードに表示する最近の社員数です。
const DefaultRecentLimit = 5

// Filters は一覧の絞り込み条件です。ゼロ値はすべてを表示します。
type Filters struct {
	Search string
	Gender string
	Status string
}

// Validate は Gender と Status の値を検証します。
func (f Filters) Validate() error {
	if f.Gender != "" && !isValidGender(Gender(f.Gender)) {
		return ErrInvalidGender
	}
	switch f.Status {
	case "", StatusFilterActive, StatusFilterInactive:
		return nil
	default:
		return ErrInvalidStatusFilter
	}
}

// Matches は e が全ての条件を満たすかを返します。
func (f Filters) Matches(e *Employee) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(f.Search)) {
		return false
	}
	if f.Gender != "" && string(e.Gender) != f.Gender {
		return false
	}
	switch f.Status {
	case StatusFilterActive:
		return e.IsActive
	case StatusFilterInactive:
		return !e.IsActive
	}
	return true
}

// Stats は絞り込み前のコレクションに対する集計値です。
type Stats struct {
	Total    int
	Active   int
	Inactive int
}

// ApplyFilters は順序を保ったまま条件に一致する社員を返します。
func ApplyFilters(list []*Employee, f Filters) []*Employee {
	out := make([]*Employee, 0, len(list))
	for _, e := range list {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// ComputeStats は件数を集計します。
func ComputeStats(list []*Employee) Stats {
	s := Stats{Total: len(list)}
	for _, e := range list {
		if e.IsActive {
			s.Active++
		} else {
			s.Inactive++
		}
	}
	return s
}

// MostRecent は createdAt の降順で先頭 n 件を返します。n が 0 以下なら空です。list 自体は並べ替えません。
func MostRecent(list []*Employee, n int) []*Employee {
	if n <= 0 {
		return []*Employee{}
	}
	sorted := make([]*Employee, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
