// Package pricing computes the price breakdown for a booking. It is pure:
// identical inputs always produce identical output.
package pricing

import (
	"fmt"

	"ceremonia/internal/domain"
)

// GroupDiscountMinParticipants is the hard cutoff for the group discount.
// Bookings with fewer participants receive no discount under any
// configuration.
const GroupDiscountMinParticipants = 4

func ComputeBreakdown(basePrice float64, totalParticipants int, discountRate, depositRate float64) (domain.PricingBreakdown, error) {
	if basePrice < 0 {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: base price must not be negative", domain.ErrValidation)
	}
	if totalParticipants < 1 {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: at least one participant is required", domain.ErrValidation)
	}

	b := domain.PricingBreakdown{
		BasePrice:         basePrice,
		TotalParticipants: totalParticipants,
		Subtotal:          basePrice * float64(totalParticipants),
	}

	if totalParticipants >= GroupDiscountMinParticipants {
		b.HasGroupDiscount = true
		b.DiscountRate = discountRate
		b.DiscountAmount = b.Subtotal * discountRate
	}

	b.TotalAmount = b.Subtotal - b.DiscountAmount
	b.DepositAmount = b.TotalAmount * depositRate
	b.RemainingBalance = b.TotalAmount - b.DepositAmount

	return b, nil
}
