package models

import "time"

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderNonBinary      Gender = "non-binary"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

// Genders lists the selectable values in sign-up form order.
var Genders = []Gender{GenderMale, GenderFemale, GenderNonBinary, GenderPreferNotToSay}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderNonBinary:
		return "Non-binary"
	case GenderPreferNotToSay:
		return "Prefer not to say"
	}
	return string(g)
}

// 저장된 계정 (credentials + profile)
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the descriptive part of an account, separate from credentials.
type Profile struct {
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Gender      Gender     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// DisplayName falls back to "User" when no name was given.
func (p Profile) DisplayName() string {
	if p.FullName == "" {
		return "User"
	}
	return p.FullName
}
