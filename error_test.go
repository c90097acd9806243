package educrawl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jmoralesv/educrawl"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := educrawl.Errorf(educrawl.ENOTFOUND, "course not found")
		assert.Equal(t, educrawl.ENOTFOUND, educrawl.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", educrawl.Errorf(educrawl.EINVALID, "bad input"))
		assert.Equal(t, educrawl.EINVALID, educrawl.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, educrawl.EINTERNAL, educrawl.ErrorCode(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", educrawl.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := educrawl.Errorf(educrawl.ENOTFOUND, "course %d not found", 7)
		assert.Equal(t, "course 7 not found", educrawl.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", educrawl.ErrorMessage(errors.New("boom")))
	})
}
