package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{ErrMissingUserFields, KindInvalidInput},
		{ErrMissingFeedbackFields, KindInvalidInput},
		{ErrRatingOutOfRange, KindInvalidInput},
		{ErrRatingNotInteger, KindInvalidInput},
		{ErrInvalidID, KindInvalidInput},
		{ErrUserNotFound, KindInvalidInput},
		{ErrNoFeedbackForUser, KindNotFound},
		{ErrFeedbackNotFound, KindNotFound},
		{fmt.Errorf("%w: connection refused", ErrDatabaseError), KindInternal},
		{errors.New("boom"), KindInternal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Kind(tc.err), tc.err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "InvalidInput", KindInvalidInput.String())
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "Internal", KindInternal.String())
}
