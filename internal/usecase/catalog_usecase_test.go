package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"servicecalc/internal/domain/entities"
	mock_interfaces "servicecalc/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_SaveService(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.SaveService(context.Background(), entities.Service{Name: "Painting"})
		if !errors.Is(err, ErrInvalidService) {
			t.Fatalf("expected ErrInvalidService, got %v", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.SaveService(context.Background(), entities.Service{
			Name: "Painting", Rate: decimal.NewFromInt(-1), Unit: "sqm", Category: "finishing",
		})
		if !errors.Is(err, ErrInvalidService) {
			t.Fatalf("expected ErrInvalidService, got %v", err)
		}
	})

	t.Run("blank custom attribute key", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.SaveService(context.Background(), entities.Service{
			Name: "Painting", Rate: decimal.NewFromInt(10), Unit: "sqm", Category: "finishing",
			CustomAttributes: []entities.CustomAttribute{{Key: "  ", Value: "x"}},
		})
		if !errors.Is(err, ErrInvalidService) {
			t.Fatalf("expected ErrInvalidService, got %v", err)
		}
	})

	t.Run("assigns id and default step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().SaveService(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" {
					t.Fatalf("expected generated id")
				}
				if !s.Step.Equal(entities.DefaultStep) {
					t.Fatalf("expected default step, got %s", s.Step)
				}
				return s, nil
			},
		)

		saved, err := uc.SaveService(context.Background(), entities.Service{
			Name: " Painting ", Rate: decimal.NewFromInt(10), Unit: "sqm", Category: "finishing",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Name != "Painting" {
			t.Fatalf("expected trimmed name, got %q", saved.Name)
		}
	})
}

func TestCatalogUseCase_DeleteCategory(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetCategories(gomock.Any()).Return(map[string]entities.Category{}, nil)

		err := uc.DeleteCategory(context.Background(), "ghost")
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("category in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetCategories(gomock.Any()).Return(map[string]entities.Category{
			"finishing": {Key: "finishing", Name: "Finishing"},
		}, nil)
		repo.EXPECT().ListServices(gomock.Any(), "finishing").Return([]entities.Service{
			{ID: "svc-1", Name: "Painting"},
		}, nil)

		err := uc.DeleteCategory(context.Background(), "finishing")
		if !errors.Is(err, ErrCategoryInUse) {
			t.Fatalf("expected ErrCategoryInUse, got %v", err)
		}
	})

	t.Run("empty category deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetCategories(gomock.Any()).Return(map[string]entities.Category{
			"finishing": {Key: "finishing", Name: "Finishing"},
		}, nil)
		repo.EXPECT().ListServices(gomock.Any(), "finishing").Return(nil, nil)
		repo.EXPECT().DeleteCategory(gomock.Any(), "finishing").Return(nil)

		if err := uc.DeleteCategory(context.Background(), "finishing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_ImportServicesCSV(t *testing.T) {
	t.Run("missing required headers", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.ImportServicesCSV(context.Background(), strings.NewReader("name,rate\nPainting,10\n"))
		if !errors.Is(err, ErrInvalidCSVHeaders) {
			t.Fatalf("expected ErrInvalidCSVHeaders, got %v", err)
		}
	})

	t.Run("imports rows and skips bad ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		csv := strings.Join([]string{
			"Name,Rate,Unit,Category,warranty",
			"Painting,12.50,sqm,finishing,2 years",
			",10,sqm,finishing,",
			"Tiling,not-a-number,sqm,finishing,",
			"Demolition,80,hour,structural,",
		}, "\n") + "\n"

		var imported []entities.Service
		repo.EXPECT().SaveService(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				imported = append(imported, s)
				return s, nil
			},
		).Times(2)

		result, err := uc.ImportServicesCSV(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 2 || result.Skipped != 2 {
			t.Fatalf("expected 2 imported and 2 skipped, got %+v", result)
		}
		if len(result.Errors) != 2 {
			t.Fatalf("expected 2 row errors, got %v", result.Errors)
		}
		if imported[0].Name != "Painting" || !imported[0].Rate.Equal(decimal.RequireFromString("12.50")) {
			t.Fatalf("unexpected first import: %+v", imported[0])
		}
		if len(imported[0].CustomAttributes) != 1 || imported[0].CustomAttributes[0].Key != "warranty" || imported[0].CustomAttributes[0].Value != "2 years" {
			t.Fatalf("expected warranty custom attribute, got %+v", imported[0].CustomAttributes)
		}
		if len(imported[1].CustomAttributes) != 0 {
			t.Fatalf("expected empty custom value to be dropped, got %+v", imported[1].CustomAttributes)
		}
	})
}

func TestCatalogUseCase_ExportServicesCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCatalogUseCase(repo)

	minOrder := decimal.NewFromInt(1)
	repo.EXPECT().ListServices(gomock.Any(), "").Return([]entities.Service{
		{
			ID: "svc-1", Name: "Painting", Rate: decimal.RequireFromString("12.5"), Unit: "sqm",
			Category: "finishing", Step: entities.DefaultStep, MinOrder: &minOrder,
			CustomAttributes: []entities.CustomAttribute{{Key: "warranty", Value: "2 years"}},
		},
		{
			ID: "svc-2", Name: "Demolition", Rate: decimal.NewFromInt(80), Unit: "hour",
			Category: "structural", Step: entities.DefaultStep,
			CustomAttributes: []entities.CustomAttribute{{Key: "crew_size", Value: "4"}},
		},
	}, nil)

	var buf bytes.Buffer
	if err := uc.ExportServicesCSV(context.Background(), "", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "name,rate,unit,category,description,min_order,max_order,step,icon_url,warranty,crew_size" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Painting,12.5,sqm,finishing,,1,,0.1,,2 years,") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",,4") {
		t.Fatalf("expected crew_size in last column: %q", lines[2])
	}
}
