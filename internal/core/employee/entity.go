package employee

import "time"

// Gender は社員の性別を表します。
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Employee は社員エンティティです。JSON タグは永続化時のフィールド名です。
type Employee struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Gender       Gender    `json:"gender"`
	DateOfBirth  string    `json:"dateOfBirth"`
	State        string    `json:"state"`
	IsActive     bool      `json:"isActive"`
	ProfileImage string    `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Fields は社員作成時に呼び出し元が指定する項目です。
type Fields struct {
	FullName     string
	Gender       Gender
	DateOfBirth  string
	State        string
	IsActive     bool
	ProfileImage string
}

// Patch は社員更新時の部分更新内容です。nil のフィールドは変更しません。
type Patch struct {
	FullName     *string
	Gender       *Gender
	DateOfBirth  *string
	State        *string
	IsActive     *bool
	ProfileImage *string
}

func (p Patch) apply(e *Employee) {
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.State != nil {
		e.State = *p.State
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	if p.ProfileImage != nil {
		e.ProfileImage = *p.ProfileImage
	}
}

func cloneEmployee(e *Employee) *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func cloneEmployees(list []*Employee) []*Employee {
	out := make([]*Employee, 0, len(list))
	for _, e := range list {
		out = append(out, cloneEmployee(e))
	}
	return out
}
