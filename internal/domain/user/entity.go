package user

import "time"

type User struct {
	ID                 string
	CPF                string
	RegistrationNumber string
	Email              string
	FirstName          string
	LastName           string
	PasswordHash       string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CanAuthenticate reports whether the user may log in.
func (u *User) CanAuthenticate() bool {
	return u.IsActive
}
