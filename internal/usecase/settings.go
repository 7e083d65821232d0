package usecase

import (
	"context"
	"strconv"

	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Settings keys and their install defaults.
const (
	SettingCurrencySymbol     = "currency_symbol"
	SettingCurrencyPosition   = "currency_position"
	SettingDecimalSeparator   = "decimal_separator"
	SettingThousandSeparator  = "thousand_separator"
	SettingDecimals           = "decimals"
	SettingTaxRate            = "tax_rate"
	SettingTaxDisplay         = "tax_display"
	SettingEmailNotifications = "email_notifications"
	SettingAdminEmail         = "admin_email"
	SettingSiteName           = "site_name"
	SettingSiteURL            = "site_url"
	SettingSiteTagline        = "site_tagline"
)

const defaultSiteName = "Service Calculator"

// LoadPricingConfig resolves the settings store into an immutable snapshot.
// It is called once at the operation boundary; engine code only ever sees
// the snapshot. Unparsable values fall back to the defaults, decimals are
// clamped to 0-4 and the tax rate to 0-100.
func LoadPricingConfig(ctx context.Context, settings interfaces.ISettingsStore) (entities.PricingConfig, error) {
	cfg := entities.DefaultPricingConfig()

	var err error
	if cfg.CurrencySymbol, err = settings.Get(ctx, SettingCurrencySymbol, cfg.CurrencySymbol); err != nil {
		return entities.PricingConfig{}, err
	}

	pos, err := settings.Get(ctx, SettingCurrencyPosition, string(cfg.CurrencyPosition))
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if entities.CurrencyPosition(pos) == entities.CurrencyAfter {
		cfg.CurrencyPosition = entities.CurrencyAfter
	} else {
		cfg.CurrencyPosition = entities.CurrencyBefore
	}

	if cfg.DecimalSeparator, err = settings.Get(ctx, SettingDecimalSeparator, cfg.DecimalSeparator); err != nil {
		return entities.PricingConfig{}, err
	}
	if cfg.ThousandSeparator, err = settings.Get(ctx, SettingThousandSeparator, cfg.ThousandSeparator); err != nil {
		return entities.PricingConfig{}, err
	}

	rawDecimals, err := settings.Get(ctx, SettingDecimals, strconv.Itoa(cfg.Decimals))
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if n, convErr := strconv.Atoi(rawDecimals); convErr == nil {
		cfg.Decimals = n
	}
	if cfg.Decimals < 0 {
		cfg.Decimals = 0
	}
	if cfg.Decimals > 4 {
		cfg.Decimals = 4
	}

	rawTaxRate, err := settings.Get(ctx, SettingTaxRate, cfg.TaxRate.String())
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if rate, convErr := decimal.NewFromString(rawTaxRate); convErr == nil {
		cfg.TaxRate = rate
	}
	if cfg.TaxRate.IsNegative() {
		cfg.TaxRate = decimal.Zero
	}
	if cfg.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		cfg.TaxRate = decimal.NewFromInt(100)
	}

	display, err := settings.Get(ctx, SettingTaxDisplay, string(cfg.TaxDisplay))
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if entities.TaxDisplay(display) == entities.TaxFolded {
		cfg.TaxDisplay = entities.TaxFolded
	} else {
		cfg.TaxDisplay = entities.TaxShown
	}

	return cfg, nil
}
