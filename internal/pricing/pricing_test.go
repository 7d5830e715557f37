package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ceremonia/internal/domain"
)

func TestComputeBreakdown_NoDiscountBelowThreshold(t *testing.T) {
	for participants := 1; participants < GroupDiscountMinParticipants; participants++ {
		b, err := ComputeBreakdown(100000, participants, 0.10, 0.5)

		require.NoError(t, err)
		assert.False(t, b.HasGroupDiscount, "participants=%d", participants)
		assert.Zero(t, b.DiscountAmount)
		assert.Zero(t, b.DiscountRate)
		assert.Equal(t, b.Subtotal, b.TotalAmount)
	}
}

func TestComputeBreakdown_DiscountAtThreshold(t *testing.T) {
	for _, participants := range []int{4, 5, 10, 37} {
		b, err := ComputeBreakdown(100000, participants, 0.10, 0.5)

		require.NoError(t, err)
		assert.True(t, b.HasGroupDiscount, "participants=%d", participants)
		assert.Equal(t, 0.10, b.DiscountRate)
		assert.Equal(t, b.Subtotal*0.10, b.DiscountAmount)
	}
}

func TestComputeBreakdown_SingleParticipant(t *testing.T) {
	b, err := ComputeBreakdown(100000, 1, 0.10, 0.5)

	require.NoError(t, err)
	assert.Equal(t, 100000.0, b.Subtotal)
	assert.Equal(t, 0.0, b.DiscountAmount)
	assert.Equal(t, 100000.0, b.TotalAmount)
	assert.Equal(t, 50000.0, b.DepositAmount)
	assert.Equal(t, 50000.0, b.RemainingBalance)
}

func TestComputeBreakdown_GroupOfFour(t *testing.T) {
	b, err := ComputeBreakdown(100000, 4, 0.10, 0.5)

	require.NoError(t, err)
	assert.Equal(t, 400000.0, b.Subtotal)
	assert.Equal(t, 40000.0, b.DiscountAmount)
	assert.Equal(t, 360000.0, b.TotalAmount)
	assert.Equal(t, 180000.0, b.DepositAmount)
	assert.Equal(t, 180000.0, b.RemainingBalance)
}

func TestComputeBreakdown_UnevenDepositRate(t *testing.T) {
	b, err := ComputeBreakdown(100000, 1, 0.10, 0.3)

	require.NoError(t, err)
	assert.Equal(t, b.TotalAmount, b.DepositAmount+b.RemainingBalance)
	assert.NotEqual(t, b.TotalAmount, b.DepositAmount*2)
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	first, err := ComputeBreakdown(123457.89, 7, 0.15, 0.35)
	require.NoError(t, err)

	second, err := ComputeBreakdown(123457.89, 7, 0.15, 0.35)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, math.Float64bits(first.DepositAmount), math.Float64bits(second.DepositAmount))
	assert.Equal(t, math.Float64bits(first.DiscountAmount), math.Float64bits(second.DiscountAmount))
}

func TestComputeBreakdown_NegativeBasePrice(t *testing.T) {
	_, err := ComputeBreakdown(-1, 1, 0.10, 0.5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestComputeBreakdown_ZeroParticipants(t *testing.T) {
	for _, participants := range []int{0, -3} {
		_, err := ComputeBreakdown(100000, participants, 0.10, 0.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestComputeBreakdown_ZeroBasePriceAllowed(t *testing.T) {
	b, err := ComputeBreakdown(0, 5, 0.10, 0.5)

	require.NoError(t, err)
	assert.True(t, b.HasGroupDiscount)
	assert.Zero(t, b.TotalAmount)
	assert.Zero(t, b.DepositAmount)
}
