package auth

import (
	"errors"
	"fmt"
)

// 错误信息会原样展示给客户端
var (
	ErrInvalidCredentials = errors.New("Invalid username or password.")
	ErrDisabled           = errors.New("Your account is disabled.")
	ErrLocked             = errors.New("Your account is locked.")
	ErrAlreadyExists      = errors.New("identity already exists")
)

type alreadyExistsError struct {
	email string
}

func (e *alreadyExistsError) Error() string {
	return fmt.Sprintf("user with email address %s already exist.", e.email)
}

func (e *alreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

func newAlreadyExists(email string) error {
	return &alreadyExistsError{email: email}
}
