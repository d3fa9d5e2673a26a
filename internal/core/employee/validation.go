package employee

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	dateLayout        = "2006-01-02"
	minFullNameLength = 2
	maxFullNameLength = 100
)

// normalizeFields はフォームの基本ルールを検証し、前後空白を除去した値を返します。
func normalizeFields(in Fields) (Fields, error) {
	name, err := normalizeFullName(in.FullName)
	if err != nil {
		return Fields{}, err
	}
	if !isValidGender(in.Gender) {
		return Fields{}, ErrInvalidGender
	}
	dob, err := normalizeDateOfBirth(in.DateOfBirth)
	if err != nil {
		return Fields{}, err
	}
	state, err := normalizeState(in.State)
	if err != nil {
		return Fields{}, err
	}

	return Fields{
		FullName:     name,
		Gender:       in.Gender,
		DateOfBirth:  dob,
		State:        state,
		IsActive:     in.IsActive,
		ProfileImage: strings.TrimSpace(in.ProfileImage),
	}, nil
}

func normalizePatch(in Patch) (Patch, error) {
	out := in
	if in.FullName != nil {
		name, err := normalizeFullName(*in.FullName)
		if err != nil {
			return Patch{}, err
		}
		out.FullName = &name
	}
	if in.Gender != nil && !isValidGender(*in.Gender) {
		return Patch{}, ErrInvalidGender
	}
	if in.DateOfBirth != nil {
		dob, err := normalizeDateOfBirth(*in.DateOfBirth)
		if err != nil {
			return Patch{}, err
		}
		out.DateOfBirth = &dob
	}
	if in.State != nil {
		state, err := normalizeState(*in.State)
		if err != nil {
			return Patch{}, err
		}
		out.State = &state
	}
	if in.ProfileImage != nil {
		image := strings.TrimSpace(*in.ProfileImage)
		out.ProfileImage = &image
	}
	return out, nil
}

func normalizeFullName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(trimmed)
	if n < minFullNameLength || n > maxFullNameLength {
		return "", ErrInvalidFullName
	}
	return trimmed, nil
}

func normalizeDateOfBirth(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidDateOfBirth
	}
	if _, err := time.ParseInLocation(dateLayout, trimmed, time.UTC); err != nil {
		return "", ErrInvalidDateOfBirth
	}
	return trimmed, nil
}

func normalizeState(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsKnownRegion(trimmed) {
		return "", ErrInvalidState
	}
	return trimmed, nil
}

func isValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// ParseGender は文字列を Gender に変換します。
func ParseGender(raw string) (Gender, error) {
	g := Gender(strings.TrimSpace(raw))
	if !isValidGender(g) {
		return "", ErrInvalidGender
	}
	return g, nil
}
