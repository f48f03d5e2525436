package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrCPFExists                = errors.New("cpf already registered")
	ErrEmailExists              = errors.New("email already registered")
	ErrRegistrationNumberExists = errors.New("registration number already registered")
)
