package entities

import "time"

// PublishedPrice is the price a repricing run settled on for one SKU, channel and role
type PublishedPrice struct {
	RunID       string    `json:"run_id"`
	SKU         SKU       `json:"sku"`
	Channel     ChannelID `json:"channel"`
	Role        Role      `json:"role,omitempty"`
	Price       float64   `json:"price"`
	NetPrice    float64   `json:"net_price"`
	GuardrailOK bool      `json:"guardrail_ok"`
	PublishedAt time.Time `json:"published_at"`
}

// PriceKey identifies a published price
type PriceKey struct {
	SKU     SKU
	Channel ChannelID
	Role    Role
}

// Key returns the identity of the published price
func (p PublishedPrice) Key() PriceKey {
	return PriceKey{SKU: p.SKU, Channel: p.Channel, Role: p.Role}
}
