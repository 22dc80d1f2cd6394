package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindAuth
	KindNotFound
	KindDuplicate
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Authentication(msg string) error {
	return &Error{Kind: KindAuth, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Duplicate(msg string) error {
	return &Error{Kind: KindDuplicate, Message: msg}
}

// StatusCode maps an error to its HTTP status. Unclassified errors are
// treated as internal.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindValidation, KindDuplicate:
			return fiber.StatusBadRequest
		case KindAuth:
			return fiber.StatusUnauthorized
		case KindNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}
