package entity

import "math"

// First-order promotion for customers that linked the Telegram bot.
const (
	TelegramPromoCode        = "TELEGRAM15"
	TelegramPromoPercent     = 15
	TelegramPromoMinOrder    = 20.00
	TelegramPromoMaxDiscount = 50.00
)

// TelegramPromotion describes the customer's standing for the
// first-order discount.
type TelegramPromotion struct {
	IsEligible       bool    `json:"isEligible"`
	Discount         int     `json:"discount"`
	Code             string  `json:"code"`
	HasConfiguredBot bool    `json:"hasConfiguredBot"`
	IsFirstOrder     bool    `json:"isFirstOrder"`
	MinOrder         float64 `json:"minOrder"`
}

// TelegramDiscount returns the discount amount for an order total,
// zero below the minimum order and capped at the maximum discount.
func TelegramDiscount(orderTotal float64) float64 {
	if orderTotal < TelegramPromoMinOrder {
		return 0
	}
	discount := orderTotal * TelegramPromoPercent / 100
	return math.Min(discount, TelegramPromoMaxDiscount)
}

// CheckoutQuote is the priced breakdown shown before submission.
type CheckoutQuote struct {
	Subtotal       float64        `json:"subtotal"`
	DeliveryFee    float64        `json:"deliveryFee"`
	Discount       float64        `json:"discount"`
	Total          float64        `json:"total"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	ItemCount      int            `json:"itemCount"`
}
