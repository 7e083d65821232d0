package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase/interfaces"
	"servicecalc/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRequest  = errors.New("invalid service request")
	ErrServiceNotFound = errors.New("service not found")
	ErrEmptyRequest    = errors.New("no services selected")
	ErrNoValidServices = errors.New("no valid services in request")
)

// ICalculatorUseCase is the pricing engine: pure computation over catalog
// data and a configuration snapshot.
//
// ComputeTotal tolerates partial failure: requests that do not price are
// dropped from aggregation and reported on the result's Failures list so
// callers can surface warnings. Only an entirely unpriceable request is an
// error.

type ICalculatorUseCase interface {
	LoadConfig(ctx context.Context) (entities.PricingConfig, error)
	ComputeLineItem(ctx context.Context, cfg entities.PricingConfig, serviceID string, quantity decimal.Decimal) (entities.LineItemResult, error)
	ComputeTotal(ctx context.Context, cfg entities.PricingConfig, requests []entities.LineItemRequest) (entities.CalculationResult, error)
	Calculate(ctx context.Context, requests []entities.LineItemRequest) (entities.CalculationResult, error)
}

type CalculatorUseCase struct {
	catalog  interfaces.ICatalogRepository
	settings interfaces.ISettingsStore
}

var _ ICalculatorUseCase = (*CalculatorUseCase)(nil)

func NewCalculatorUseCase(catalog interfaces.ICatalogRepository, settings interfaces.ISettingsStore) *CalculatorUseCase {
	return &CalculatorUseCase{catalog: catalog, settings: settings}
}

func (u *CalculatorUseCase) LoadConfig(ctx context.Context) (entities.PricingConfig, error) {
	return LoadPricingConfig(ctx, u.settings)
}

// ComputeLineItem prices a single (service, quantity) pair. The subtotal is
// the exact decimal product rate*quantity; rounding happens only in the
// formatted fields.
func (u *CalculatorUseCase) ComputeLineItem(ctx context.Context, cfg entities.PricingConfig, serviceID string, quantity decimal.Decimal) (entities.LineItemResult, error) {
	units, err := u.catalog.GetUnits(ctx)
	if err != nil {
		return entities.LineItemResult{}, fmt.Errorf("failed to load units: %w", err)
	}
	return u.computeLine(ctx, cfg, units, entities.LineItemRequest{ServiceID: serviceID, Quantity: quantity})
}

func (u *CalculatorUseCase) computeLine(ctx context.Context, cfg entities.PricingConfig, units map[string]entities.Unit, req entities.LineItemRequest) (entities.LineItemResult, error) {
	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" || !req.Quantity.IsPositive() {
		return entities.LineItemResult{}, ErrInvalidRequest
	}

	svc, err := u.catalog.GetService(ctx, serviceID)
	if err != nil {
		return entities.LineItemResult{}, fmt.Errorf("failed to load service %s: %w", serviceID, err)
	}
	if svc.ID == "" {
		return entities.LineItemResult{}, ErrServiceNotFound
	}

	unitSymbol := ""
	if unit, ok := units[svc.Unit]; ok {
		unitSymbol = unit.Symbol
	}

	subtotal := svc.Rate.Mul(req.Quantity)

	return entities.LineItemResult{
		ServiceID:         svc.ID,
		ServiceName:       svc.Name,
		Rate:              svc.Rate,
		RateFormatted:     formatPrice(cfg, svc.Rate),
		Quantity:          req.Quantity,
		UnitKey:           svc.Unit,
		UnitSymbol:        unitSymbol,
		Subtotal:          subtotal,
		SubtotalFormatted: formatPrice(cfg, subtotal),
	}, nil
}

// ComputeTotal prices every request against the same configuration
// snapshot and aggregates. The result's line order follows the request
// order. Tax is computed once over the aggregate subtotal, and is zero
// when the configuration folds tax away.
func (u *CalculatorUseCase) ComputeTotal(ctx context.Context, cfg entities.PricingConfig, requests []entities.LineItemRequest) (entities.CalculationResult, error) {
	if len(requests) == 0 {
		return entities.CalculationResult{}, ErrEmptyRequest
	}

	units, err := u.catalog.GetUnits(ctx)
	if err != nil {
		return entities.CalculationResult{}, fmt.Errorf("failed to load units: %w", err)
	}

	lines := make([]entities.LineItemResult, 0, len(requests))
	var failures []entities.LineItemFailure
	totalSubtotal := decimal.Zero

	for _, req := range requests {
		line, lineErr := u.computeLine(ctx, cfg, units, req)
		if lineErr != nil {
			if errors.Is(lineErr, ErrInvalidRequest) || errors.Is(lineErr, ErrServiceNotFound) {
				failures = append(failures, entities.LineItemFailure{
					ServiceID: req.ServiceID,
					Reason:    lineErr.Error(),
				})
				continue
			}
			return entities.CalculationResult{}, lineErr
		}
		lines = append(lines, line)
		totalSubtotal = totalSubtotal.Add(line.Subtotal)
	}

	if len(lines) == 0 {
		return entities.CalculationResult{}, ErrNoValidServices
	}

	totalTax := decimal.Zero
	if cfg.TaxShown() {
		totalTax = totalSubtotal.Mul(cfg.TaxRate).Div(decimal.NewFromInt(100))
	}
	grandTotal := totalSubtotal.Add(totalTax)

	return entities.CalculationResult{
		Lines:                  lines,
		Failures:               failures,
		TotalSubtotal:          totalSubtotal,
		TotalSubtotalFormatted: formatPrice(cfg, totalSubtotal),
		TaxRate:                cfg.TaxRate,
		TotalTax:               totalTax,
		TotalTaxFormatted:      formatPrice(cfg, totalTax),
		GrandTotal:             grandTotal,
		GrandTotalFormatted:    formatPrice(cfg, grandTotal),
	}, nil
}

// Calculate resolves the current configuration and prices the requests
// against it.
func (u *CalculatorUseCase) Calculate(ctx context.Context, requests []entities.LineItemRequest) (entities.CalculationResult, error) {
	cfg, err := u.LoadConfig(ctx)
	if err != nil {
		return entities.CalculationResult{}, err
	}
	return u.ComputeTotal(ctx, cfg, requests)
}

func formatPrice(cfg entities.PricingConfig, amount decimal.Decimal) string {
	return money.Format(amount, cfg.CurrencySymbol, string(cfg.CurrencyPosition), cfg.DecimalSeparator, cfg.ThousandSeparator, cfg.Decimals)
}
