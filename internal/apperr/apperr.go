// Package apperr описывает ошибки уровня сервисов и их соответствие HTTP-статусам.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
	KindForbidden
	KindInsufficientFunds
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
	// Retryable - клиент может повторить запрос (например, истёк таймаут транзакции)
	Retryable bool
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по виду и сообщению, чтобы errors.Is работал с сентинелами
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Validation(msg string) *Error {
	return New(KindValidation, msg)
}

// Internal оборачивает ошибку хранилища или любую непредвиденную ошибку
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

func Retryable(err error) *Error {
	return &Error{Kind: KindInternal, Err: err, Retryable: true}
}

var (
	ErrGameUnavailable    = New(KindForbidden, "Game is disabled")
	ErrGameNotFound       = New(KindNotFound, "Game not found")
	ErrUserNotFound       = New(KindNotFound, "User not found")
	ErrInsufficientFunds  = New(KindInsufficientFunds, "Insufficient balance")
	ErrUsernameTaken      = New(KindConflict, "Username already exists")
	ErrInvalidCredentials = New(KindUnauthorized, "Invalid credentials")
	ErrInvalidAction      = Validation("Invalid action")
	ErrRateLimited        = New(KindTooManyRequests, "Too many requests")
)

// KindOf возвращает вид ошибки; всё, что не *Error, считается внутренней ошибкой
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInsufficientFunds:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
