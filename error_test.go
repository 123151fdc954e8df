package stockbot_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/stockbot"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := stockbot.Errorf(stockbot.EINVALID, "slot %d out of range", 4)

	assert.Equal(t, stockbot.EINVALID, stockbot.ErrorCode(err))
	assert.Equal(t, "slot 4 out of range", stockbot.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stockbot.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stockbot.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("ask question: %w", stockbot.Errorf(stockbot.EUNAVAILABLE, "connection refused"))

	assert.Equal(t, stockbot.EUNAVAILABLE, stockbot.ErrorCode(err))
	assert.Equal(t, "connection refused", stockbot.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, stockbot.EINTERNAL, stockbot.ErrorCode(err))
	assert.Equal(t, "Internal error.", stockbot.ErrorMessage(err))
}
