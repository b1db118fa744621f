package orchestration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vsinha/pricinglaw/pkg/application/dto"
	"github.com/vsinha/pricinglaw/pkg/application/services/pricing"
	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/domain/repositories"
	"github.com/vsinha/pricinglaw/pkg/domain/services"
	"github.com/vsinha/pricinglaw/pkg/infrastructure/events"
)

var (
	// ErrInvalidContext is returned by strict runs whose context snapshot fails validation
	ErrInvalidContext = errors.New("invalid pricing context")
	// ErrInvalidProduct is returned by strict runs when a catalog product fails validation
	ErrInvalidProduct = errors.New("invalid product")
)

// DefaultWorkers is the number of repricing workers used when none is configured
const DefaultWorkers = 4

// Options tunes a RepricingOrchestrator
type Options struct {
	Workers int
	Strict  bool
}

// RepricingRequest selects what a batch run prices. Empty SKUs prices the whole
// catalog; empty Channels prices every active channel of the snapshot.
type RepricingRequest struct {
	SKUs       []entities.SKU
	Channels   []entities.ChannelID
	Role       entities.Role
	Quantity   int
	OrderValue float64
}

// RepricingOrchestrator prices a catalog across channels against one context snapshot
type RepricingOrchestrator struct {
	engine      *pricing.Engine
	validator   *services.ContextValidator
	productRepo repositories.ProductRepository
	contextRepo repositories.ContextRepository
	priceRepo   repositories.PriceRepository
	eventStore  events.EventStore
	log         zerolog.Logger
	options     Options
	now         func() time.Time
}

// NewRepricingOrchestrator creates a new repricing orchestrator
func NewRepricingOrchestrator(
	engine *pricing.Engine,
	productRepo repositories.ProductRepository,
	contextRepo repositories.ContextRepository,
	priceRepo repositories.PriceRepository,
	eventStore events.EventStore,
	log zerolog.Logger,
	options Options,
) *RepricingOrchestrator {
	if options.Workers <= 0 {
		options.Workers = DefaultWorkers
	}
	return &RepricingOrchestrator{
		engine:      engine,
		validator:   services.NewContextValidator(),
		productRepo: productRepo,
		contextRepo: contextRepo,
		priceRepo:   priceRepo,
		eventStore:  eventStore,
		log:         log.With().Str("component", "repricing").Logger(),
		options:     options,
		now:         time.Now,
	}
}

type repricingJob struct {
	index   int
	product *entities.Product
	channel entities.ChannelID
}

// RepriceCatalog runs one batch. All jobs see the same context snapshot.
// Cancellation is checked between jobs; a job already pricing runs to completion.
func (o *RepricingOrchestrator) RepriceCatalog(ctx context.Context, req RepricingRequest) (*dto.RepricingSummary, error) {
	startedAt := o.now()
	runID := uuid.NewString()
	log := o.log.With().Str("run_id", runID).Logger()

	// Step 1: Pin the context snapshot for the whole run
	snapshot, err := o.contextRepo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing context: %w", err)
	}

	products, err := o.selectProducts(req.SKUs)
	if err != nil {
		return nil, err
	}

	// Step 2: Strict mode refuses to price against bad reference data
	if o.options.Strict {
		if err := o.validate(snapshot, products); err != nil {
			log.Error().Err(err).Msg("Strict validation failed")
			return nil, err
		}
	}

	channels := req.Channels
	if len(channels) == 0 {
		channels = snapshot.ActiveChannelIDs()
	}
	for _, channel := range channels {
		if _, ok := snapshot.Channel(channel); !ok {
			log.Warn().Str("channel", string(channel)).Msg("Channel unknown or inactive, channel costs will be zero")
		}
	}

	jobs := make([]repricingJob, 0, len(products)*len(channels))
	for _, product := range products {
		for _, channel := range channels {
			jobs = append(jobs, repricingJob{index: len(jobs), product: product, channel: channel})
		}
	}

	o.publish(log, events.NewRepricingStartedEvent(events.RepricingStarted{
		RunID:    runID,
		Products: len(products),
		Channels: channels,
		Role:     req.Role,
		Strict:   o.options.Strict,
	}))
	log.Info().
		Int("products", len(products)).
		Int("channels", len(channels)).
		Int("workers", o.options.Workers).
		Msg("Repricing started")

	// Step 3: Fan out SKU x channel jobs
	results := make([]*dto.PricingResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.options.Workers)
	for _, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result := o.engine.Price(dto.PricingRequest{
				Product:    job.product,
				Channel:    job.channel,
				Role:       req.Role,
				Quantity:   req.Quantity,
				OrderValue: req.OrderValue,
			}, snapshot)
			results[job.index] = result
			return o.record(log, runID, result)
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("Repricing aborted")
		return nil, fmt.Errorf("repricing run %s aborted: %w", runID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repricing run %s aborted: %w", runID, err)
	}

	// Step 4: Summarise
	summary := summarise(runID, startedAt, len(products), results)
	summary.Duration = o.now().Sub(startedAt)

	o.publish(log, events.NewRepricingCompletedEvent(events.RepricingCompleted{
		RunID:          runID,
		Results:        len(results),
		MAPViolations:  summary.MAPViolations,
		GuardrailFails: summary.GuardrailFails,
		Duration:       summary.Duration,
	}))
	log.Info().
		Int("results", len(results)).
		Int("map_violations", summary.MAPViolations).
		Int("guardrail_fails", summary.GuardrailFails).
		Int("estimated_costs", summary.EstimatedCosts).
		Dur("duration", summary.Duration).
		Msg("Repricing completed")

	return summary, nil
}

func (o *RepricingOrchestrator) selectProducts(skus []entities.SKU) ([]*entities.Product, error) {
	if len(skus) == 0 {
		products, err := o.productRepo.GetAllProducts()
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		return products, nil
	}

	products := make([]*entities.Product, 0, len(skus))
	for _, sku := range skus {
		product, err := o.productRepo.GetProduct(sku)
		if err != nil {
			return nil, fmt.Errorf("failed to load product: %w", err)
		}
		products = append(products, product)
	}
	return products, nil
}

func (o *RepricingOrchestrator) validate(snapshot *entities.PricingContext, products []*entities.Product) error {
	if result := o.validator.ValidateContext(snapshot); !result.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidContext, strings.Join(result.Errors, "; "))
	}
	for _, product := range products {
		if result := o.validator.ValidateProduct(product); !result.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidProduct, strings.Join(result.Errors, "; "))
		}
	}
	return nil
}

// record stores the price and publishes events for notable outcomes
func (o *RepricingOrchestrator) record(log zerolog.Logger, runID string, result *dto.PricingResult) error {
	published := entities.PublishedPrice{
		RunID:       runID,
		SKU:         result.SKU,
		Channel:     result.Channel,
		Role:        result.Role,
		Price:       result.FinalPrice,
		NetPrice:    result.FinalPrice,
		GuardrailOK: result.Guardrail.GuardrailOK,
		PublishedAt: o.now(),
	}
	if result.B2B != nil {
		published.NetPrice = result.B2B.NetPrice
	}
	if err := o.priceRepo.SavePrice(published); err != nil {
		return fmt.Errorf("failed to save price for %s/%s: %w", result.SKU, result.Channel, err)
	}

	o.publish(log, events.NewPricePublishedEvent(published))
	if result.HasFlag(dto.FlagCostEstimated) {
		o.publish(log, events.NewCostEstimatedEvent(runID, result.SKU, result.FullCost))
	}
	if result.HasFlag(dto.FlagMAPViolated) {
		log.Info().
			Str("sku", string(result.SKU)).
			Str("channel", string(result.Channel)).
			Float64("price", result.FinalPrice).
			Str("reason", result.MAP.Reason).
			Msg("Price raised to MAP")
		o.publish(log, events.NewMAPViolatedEvent(runID, result.SKU, result.Channel, result.MAP))
	}
	if result.HasFlag(dto.FlagGuardrailFailed) {
		log.Warn().
			Str("sku", string(result.SKU)).
			Str("channel", string(result.Channel)).
			Float64("price", result.FinalPrice).
			Float64("margin_pct", result.Guardrail.MarginPct).
			Float64("threshold_pct", result.Guardrail.ThresholdPct).
			Msg("Guardrail failed")
		o.publish(log, events.NewGuardrailFailedEvent(runID, result.SKU, result.Channel, result.FinalPrice, result.Guardrail))
	}
	if result.HasFlag(dto.FlagGrundpreisInvalid) {
		o.publish(log, events.NewGrundpreisInvalidEvent(runID, result.SKU, result.Grundpreis))
	}
	if result.HasFlag(dto.FlagDiscountCapped) {
		o.publish(log, events.NewDiscountCappedEvent(runID, result.SKU, result.Role, *result.B2B))
	}
	return nil
}

// publish appends to the run stream; a failing event store never fails the run
func (o *RepricingOrchestrator) publish(log zerolog.Logger, event events.Event) {
	if o.eventStore == nil {
		return
	}
	if err := o.eventStore.AppendEvent(event.StreamID(), event); err != nil {
		log.Warn().Err(err).Str("event_type", event.Type()).Msg("Failed to publish event")
	}
}

func summarise(runID string, startedAt time.Time, products int, results []*dto.PricingResult) *dto.RepricingSummary {
	summary := &dto.RepricingSummary{
		RunID:     runID,
		StartedAt: startedAt,
		Products:  products,
		Results:   results,
	}
	for _, result := range results {
		if result.HasFlag(dto.FlagMAPViolated) {
			summary.MAPViolations++
		}
		if result.HasFlag(dto.FlagGuardrailFailed) {
			summary.GuardrailFails++
		}
		if result.HasFlag(dto.FlagCostEstimated) {
			summary.EstimatedCosts++
		}
		if result.HasFlag(dto.FlagGrundpreisInvalid) {
			summary.GrundpreisErrors++
		}
		if result.HasFlag(dto.FlagDiscountCapped) {
			summary.DiscountsCapped++
		}
	}
	return summary
}
