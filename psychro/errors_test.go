package psychro

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Error_Is(t *testing.T) {
	err := invalidInput("wet bulb exceeds dry bulb", 25, 20)

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrInsufficientData))
	assert.Equal(t, "invalid input: wet bulb exceeds dry bulb (value 25, bound 20)", err.Error())

	// ラップされていても種類で判定できる
	wrapped := fmt.Errorf("row 3: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidInput)

	var e *Error
	assert.True(t, errors.As(wrapped, &e))
	assert.Equal(t, 25.0, e.Value)
	assert.Equal(t, 20.0, e.Bound)
}

func Test_ErrorKind_String(t *testing.T) {
	assert.Equal(t, "insufficient data", InsufficientData.String())
	assert.Equal(t, "unsupported combination", UnsupportedCombination.String())
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
	assert.Equal(t, "no physical solution", ErrNoPhysicalSolution.Error())
}
