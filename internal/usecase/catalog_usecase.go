package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidService    = errors.New("invalid service data")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInUse     = errors.New("category has services assigned")
	ErrInvalidCSVHeaders = errors.New("missing required csv headers")
)

// csvStandardFields are the known CSV columns, in export order. Any other
// column becomes a free-form custom attribute keyed by its header.
var csvStandardFields = []string{"name", "rate", "unit", "category", "description", "min_order", "max_order", "step", "icon_url"}

// ImportResult summarizes a CSV import. Skipped rows are not fatal; Errors
// carries one message per skipped row.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ICatalogUseCase is the catalog admin surface: service/unit/category
// management and bulk CSV transfer. The calculation engine reads the same
// repository directly and never goes through this interface.

type ICatalogUseCase interface {
	ListServices(ctx context.Context, category string) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	SaveService(ctx context.Context, s entities.Service) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	GetUnits(ctx context.Context) (map[string]entities.Unit, error)
	SaveUnit(ctx context.Context, u entities.Unit) error
	DeleteUnit(ctx context.Context, key string) error

	GetCategories(ctx context.Context) (map[string]entities.Category, error)
	SaveCategory(ctx context.Context, c entities.Category) error
	DeleteCategory(ctx context.Context, key string) error

	ImportServicesCSV(ctx context.Context, r io.Reader) (ImportResult, error)
	ExportServicesCSV(ctx context.Context, category string, w io.Writer) error
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServices(ctx context.Context, category string) ([]entities.Service, error) {
	return u.repo.ListServices(ctx, strings.TrimSpace(category))
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidRequest
	}
	svc, err := u.repo.GetService(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

func (u *CatalogUseCase) SaveService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Unit = strings.TrimSpace(s.Unit)
	s.Category = strings.TrimSpace(s.Category)

	if s.Name == "" || s.Unit == "" || s.Category == "" || s.Rate.IsNegative() {
		return entities.Service{}, ErrInvalidService
	}
	for _, attr := range s.CustomAttributes {
		if strings.TrimSpace(attr.Key) == "" {
			return entities.Service{}, ErrInvalidService
		}
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Step.IsZero() {
		s.Step = entities.DefaultStep
	}

	return u.repo.SaveService(ctx, s)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRequest
	}
	return u.repo.DeleteService(ctx, id)
}

func (u *CatalogUseCase) GetUnits(ctx context.Context) (map[string]entities.Unit, error) {
	return u.repo.GetUnits(ctx)
}

func (u *CatalogUseCase) SaveUnit(ctx context.Context, unit entities.Unit) error {
	unit.Key = strings.TrimSpace(unit.Key)
	if unit.Key == "" || strings.TrimSpace(unit.Name) == "" {
		return ErrInvalidRequest
	}
	return u.repo.SaveUnit(ctx, unit)
}

func (u *CatalogUseCase) DeleteUnit(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidRequest
	}
	return u.repo.DeleteUnit(ctx, key)
}

func (u *CatalogUseCase) GetCategories(ctx context.Context) (map[string]entities.Category, error) {
	return u.repo.GetCategories(ctx)
}

func (u *CatalogUseCase) SaveCategory(ctx context.Context, c entities.Category) error {
	c.Key = strings.TrimSpace(c.Key)
	if c.Key == "" || strings.TrimSpace(c.Name) == "" {
		return ErrInvalidRequest
	}
	return u.repo.SaveCategory(ctx, c)
}

// DeleteCategory removes a category, refusing while any service still
// references it.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidRequest
	}

	categories, err := u.repo.GetCategories(ctx)
	if err != nil {
		return err
	}
	if _, ok := categories[key]; !ok {
		return ErrCategoryNotFound
	}

	services, err := u.repo.ListServices(ctx, key)
	if err != nil {
		return err
	}
	if len(services) > 0 {
		return fmt.Errorf("%w: %d services in %q", ErrCategoryInUse, len(services), key)
	}

	return u.repo.DeleteCategory(ctx, key)
}

// ImportServicesCSV creates one service per row. The header must contain
// name, rate, unit and category (case-insensitive); description, min_order,
// max_order, step and icon_url are recognized when present, and every other
// column is stored as a custom attribute in header order. Bad rows are
// skipped, not fatal.
func (u *CatalogUseCase) ImportServicesCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	var missing []string
	for _, required := range []string{"name", "rate", "unit", "category"} {
		if !containsString(headers, required) {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidCSVHeaders, strings.Join(missing, ", "))
	}

	var result ImportResult
	rowNum := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to read csv row: %w", err)
		}
		rowNum++

		if len(row) != len(headers) {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: column count mismatch", rowNum))
			continue
		}

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			fields[h] = strings.TrimSpace(row[i])
		}

		if fields["name"] == "" || fields["rate"] == "" || fields["unit"] == "" || fields["category"] == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing required fields", rowNum))
			continue
		}

		rate, err := decimal.NewFromString(fields["rate"])
		if err != nil || rate.IsNegative() {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid rate %q", rowNum, fields["rate"]))
			continue
		}

		svc := entities.Service{
			Name:        fields["name"],
			Rate:        rate,
			Unit:        fields["unit"],
			Category:    fields["category"],
			Description: fields["description"],
			IconURL:     fields["icon_url"],
		}
		svc.MinOrder = parseOptionalDecimal(fields["min_order"])
		svc.MaxOrder = parseOptionalDecimal(fields["max_order"])
		if step, err := decimal.NewFromString(fields["step"]); err == nil && step.IsPositive() {
			svc.Step = step
		}

		// Extra columns become custom attributes, in header order.
		for _, h := range headers {
			if containsString(csvStandardFields, h) {
				continue
			}
			if v := fields[h]; v != "" {
				svc.CustomAttributes = append(svc.CustomAttributes, entities.CustomAttribute{Key: h, Value: v})
			}
		}

		if _, err := u.SaveService(ctx, svc); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ExportServicesCSV writes the catalog as CSV: the standard columns plus
// the union of every custom attribute key, in first-seen order.
func (u *CatalogUseCase) ExportServicesCSV(ctx context.Context, category string, w io.Writer) error {
	services, err := u.repo.ListServices(ctx, strings.TrimSpace(category))
	if err != nil {
		return err
	}

	var customKeys []string
	for _, svc := range services {
		for _, attr := range svc.CustomAttributes {
			if !containsString(customKeys, attr.Key) {
				customKeys = append(customKeys, attr.Key)
			}
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(append(append([]string{}, csvStandardFields...), customKeys...)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, svc := range services {
		row := []string{
			svc.Name,
			svc.Rate.String(),
			svc.Unit,
			svc.Category,
			svc.Description,
			optionalDecimalString(svc.MinOrder),
			optionalDecimalString(svc.MaxOrder),
			svc.Step.String(),
			svc.IconURL,
		}
		attrs := make(map[string]string, len(svc.CustomAttributes))
		for _, attr := range svc.CustomAttributes {
			attrs[attr.Key] = attr.Value
		}
		for _, key := range customKeys {
			row = append(row, attrs[key])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func parseOptionalDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func optionalDecimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
