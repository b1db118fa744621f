package events

import (
	"time"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

const (
	RepricingStartedEvent   = "repricing.started"
	RepricingCompletedEvent = "repricing.completed"

	PricePublishedEvent    = "price.published"
	CostEstimatedEvent     = "cost.estimated"
	MAPViolatedEvent       = "map.violated"
	GuardrailFailedEvent   = "guardrail.failed"
	GrundpreisInvalidEvent = "grundpreis.invalid"
	DiscountCappedEvent    = "discount.capped"
)

// AllPricingEventTypes lists every event type a repricing run can emit
var AllPricingEventTypes = []string{
	RepricingStartedEvent,
	RepricingCompletedEvent,
	PricePublishedEvent,
	CostEstimatedEvent,
	MAPViolatedEvent,
	GuardrailFailedEvent,
	GrundpreisInvalidEvent,
	DiscountCappedEvent,
}

type RepricingStarted struct {
	RunID    string               `json:"run_id"`
	Products int                  `json:"products"`
	Channels []entities.ChannelID `json:"channels"`
	Role     entities.Role        `json:"role,omitempty"`
	Strict   bool                 `json:"strict"`
}

type RepricingCompleted struct {
	RunID          string        `json:"run_id"`
	Results        int           `json:"results"`
	MAPViolations  int           `json:"map_violations"`
	GuardrailFails int           `json:"guardrail_fails"`
	Duration       time.Duration `json:"duration"`
}

type PricePublished struct {
	Price entities.PublishedPrice `json:"price"`
}

type CostEstimated struct {
	SKU        entities.SKU               `json:"sku"`
	Components []entities.CostComponent   `json:"components"`
	FullCost   entities.FullCostBreakdown `json:"full_cost"`
}

type MAPViolated struct {
	SKU     entities.SKU       `json:"sku"`
	Channel entities.ChannelID `json:"channel"`
	Result  entities.MAPResult `json:"result"`
}

type GuardrailFailed struct {
	SKU     entities.SKU             `json:"sku"`
	Channel entities.ChannelID       `json:"channel"`
	Price   float64                  `json:"price"`
	Result  entities.GuardrailResult `json:"result"`
}

type GrundpreisInvalid struct {
	SKU    entities.SKU              `json:"sku"`
	Result entities.GrundpreisResult `json:"result"`
}

type DiscountCapped struct {
	SKU    entities.SKU               `json:"sku"`
	Role   entities.Role              `json:"role"`
	Result entities.B2BDiscountResult `json:"result"`
}

func NewRepricingStartedEvent(started RepricingStarted) Event {
	return NewEvent(RepricingStartedEvent, started.RunID, started)
}

func NewRepricingCompletedEvent(completed RepricingCompleted) Event {
	return NewEvent(RepricingCompletedEvent, completed.RunID, completed)
}

func NewPricePublishedEvent(price entities.PublishedPrice) Event {
	return NewEvent(PricePublishedEvent, price.RunID, PricePublished{Price: price})
}

func NewCostEstimatedEvent(runID string, sku entities.SKU, fullCost entities.FullCostBreakdown) Event {
	return NewEvent(CostEstimatedEvent, runID, CostEstimated{
		SKU:        sku,
		Components: fullCost.Estimated,
		FullCost:   fullCost,
	})
}

func NewMAPViolatedEvent(runID string, sku entities.SKU, channel entities.ChannelID, result entities.MAPResult) Event {
	return NewEvent(MAPViolatedEvent, runID, MAPViolated{SKU: sku, Channel: channel, Result: result})
}

func NewGuardrailFailedEvent(
	runID string,
	sku entities.SKU,
	channel entities.ChannelID,
	price float64,
	result entities.GuardrailResult,
) Event {
	return NewEvent(GuardrailFailedEvent, runID, GuardrailFailed{
		SKU:     sku,
		Channel: channel,
		Price:   price,
		Result:  result,
	})
}

func NewGrundpreisInvalidEvent(runID string, sku entities.SKU, result entities.GrundpreisResult) Event {
	return NewEvent(GrundpreisInvalidEvent, runID, GrundpreisInvalid{SKU: sku, Result: result})
}

func NewDiscountCappedEvent(runID string, sku entities.SKU, role entities.Role, result entities.B2BDiscountResult) Event {
	return NewEvent(DiscountCappedEvent, runID, DiscountCapped{SKU: sku, Role: role, Result: result})
}
