package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCarbons(t *testing.T) {
	n, err := ParseCarbons(SideStart, " 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, raw := range []string{"2.5", "two", "", "0", "-4", "1e3"} {
		_, err := ParseCarbons(SideTarget, raw)
		require.Error(t, err, "raw %q", raw)
		assert.ErrorIs(t, err, ErrInvalidInput)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, SideTarget, ve.Side)
		assert.Equal(t, "carbons", ve.Field)
	}
}

func TestCarbonsFromNumber(t *testing.T) {
	n, err := CarbonsFromNumber(SideStart, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, f := range []float64{2.5, -1, 0, math.NaN(), math.Inf(1)} {
		_, err := CarbonsFromNumber(SideStart, f)
		assert.ErrorIs(t, err, ErrInvalidInput, "value %v", f)
	}

	_, err = CarbonsFromNumber(SideStart, 2.5)
	assert.Equal(t, `start: carbons: carbon count must be an integer (got "2.5")`, err.Error())

	// Huge negatives report the raw value, not a wrapped integer.
	_, err = CarbonsFromNumber(SideTarget, -1e300)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, `target: carbons: carbon count must be positive (got "-1e+300")`, err.Error())
}

func TestResolveCompound(t *testing.T) {
	c, err := ResolveCompound(SideStart, "alkyl bromide", 2)
	require.NoError(t, err)
	assert.Equal(t, "C2H5Br", c.Formula())

	_, err = ResolveCompound(SideStart, "Alkene", 1)
	require.Error(t, err)
	assert.Equal(t, "start: Alkene requires at least 2 carbon(s), got 1", err.Error())

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, SideStart, ve.Side)
	assert.Equal(t, 2, ve.Min)

	_, err = ResolveCompound(SideTarget, "ketone", 3)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, SideTarget, ve.Side)
	assert.Equal(t, "group", ve.Field)
}

func TestWithSide_KeepsExistingSide(t *testing.T) {
	err := &ValidationError{Side: SideTarget, Field: "carbons", Value: "x", Reason: "bad"}
	assert.Same(t, err, WithSide(err, SideStart))

	plain := errors.New("boom")
	assert.Equal(t, plain, WithSide(plain, SideStart))
}
