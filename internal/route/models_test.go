package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurbside_Valid(t *testing.T) {
	assert.True(t, CurbsideAny.Valid())
	assert.True(t, CurbsideLeft.Valid())
	assert.True(t, CurbsideRight.Valid())
	assert.True(t, CurbsideNone.Valid())

	assert.False(t, Curbside("middle").Valid())
	assert.False(t, Curbside("LEFT").Valid())
	assert.False(t, Curbside("both").Valid())
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Message: "point 1 is null", Index: 1}
	assert.Equal(t, "point 1 is null", err.Error())
}

func TestResult_Empty(t *testing.T) {
	var res Result
	assert.False(t, res.HasErrors())
	assert.Empty(t, res.Errors())
}
