package domain

// PricingConfig carries the configurable rates. The group-discount threshold
// itself is a business rule owned by the pricing engine, not configuration.
type PricingConfig struct {
	DiscountRate float64
	DepositRate  float64
}

// PricingBreakdown is derived from a draft and a PricingConfig; it is
// recomputed on display and at commit, never stored independently of a
// booking. Amounts are plain values in the event's currency; the engine does
// not round, presentation does.
//
// DepositAmount doubled is not guaranteed to equal TotalAmount at deposit
// rates other than 0.5; RemainingBalance is carried explicitly so callers
// never assume an even split.
type PricingBreakdown struct {
	BasePrice         float64 `json:"base_price"`
	TotalParticipants int     `json:"total_participants"`
	Subtotal          float64 `json:"subtotal"`
	HasGroupDiscount  bool    `json:"has_group_discount"`
	DiscountRate      float64 `json:"discount_rate"`
	DiscountAmount    float64 `json:"discount_amount"`
	TotalAmount       float64 `json:"total_amount"`
	DepositAmount     float64 `json:"deposit_amount"`
	RemainingBalance  float64 `json:"remaining_balance"`
}
