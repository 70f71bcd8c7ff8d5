package utils

import "errors"

var (
	ErrInvalidPayload        = errors.New("invalid request payload")
	ErrMissingUserFields     = errors.New("email and name are required")
	ErrMissingFeedbackFields = errors.New("missing required fields")
	ErrRatingOutOfRange      = errors.New("rating must be between 1 and 5")
	ErrRatingNotInteger      = errors.New("rating must be a whole number")
	ErrInvalidID             = errors.New("invalid id")
	ErrUserNotFound          = errors.New("user does not exist")

	ErrNoFeedbackForUser = errors.New("no feedback found for this user")
	ErrFeedbackNotFound  = errors.New("feedback not found")

	ErrDatabaseError = errors.New("database error")
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindNotFound:
		return "NotFound"
	default:
		return "Internal"
	}
}

// Kind classifies err. Anything unrecognised is Internal.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidPayload),
		errors.Is(err, ErrMissingUserFields),
		errors.Is(err, ErrMissingFeedbackFields),
		errors.Is(err, ErrRatingOutOfRange),
		errors.Is(err, ErrRatingNotInteger),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrUserNotFound):
		return KindInvalidInput
	case errors.Is(err, ErrNoFeedbackForUser),
		errors.Is(err, ErrFeedbackNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}
