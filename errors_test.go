package vehiclecomp_test

import (
	"errors"
	"testing"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := vehiclecomp.Errorf(vehiclecomp.ENOTFOUND, "source %q not registered", "carmudi")

	assert.Equal(t, vehiclecomp.ENOTFOUND, vehiclecomp.ErrorCode(err))
	assert.Equal(t, "source \"carmudi\" not registered", vehiclecomp.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vehiclecomp.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vehiclecomp.EINTERNAL, vehiclecomp.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vehiclecomp.ErrorMessage(nil))
}
