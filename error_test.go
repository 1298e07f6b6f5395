package dealerfinder_test

import (
	"errors"
	"testing"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := dealerfinder.Errorf(dealerfinder.ENOTFOUND, "no location for zip %q", "00000")

	assert.Equal(t, dealerfinder.ENOTFOUND, dealerfinder.ErrorCode(err))
	assert.Equal(t, "no location for zip \"00000\"", dealerfinder.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dealerfinder.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, dealerfinder.EINTERNAL, dealerfinder.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dealerfinder.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", dealerfinder.ErrorMessage(errors.New("boom")))
}
