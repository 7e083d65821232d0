package request

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateRequest_ToLineItems(t *testing.T) {
	r := CalculateRequest{Services: []LineItemRequest{
		{ServiceID: "svc-1", Quantity: "2.5"},
		{ServiceID: "svc-2", Quantity: "not-a-number"},
	}}

	items := r.ToLineItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Quantity.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("expected quantity 2.5, got %s", items[0].Quantity)
	}
	if !items[1].Quantity.IsZero() {
		t.Fatalf("expected unparsable quantity to become zero, got %s", items[1].Quantity)
	}
}

func TestServiceRequest_ToEntity(t *testing.T) {
	t.Run("invalid rate", func(t *testing.T) {
		r := ServiceRequest{Name: "Painting", Rate: "abc", Unit: "sqm", Category: "finishing"}
		if _, err := r.ToEntity(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		r := ServiceRequest{
			Name: "Painting", Rate: "12.50", Unit: "sqm", Category: "finishing",
			MinOrder: "1", Step: "0.5",
			CustomAttributes: []CustomAttributeRequest{{Key: "warranty", Value: "2 years"}},
		}
		svc, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.MinOrder == nil || !svc.MinOrder.Equal(decimal.NewFromInt(1)) {
			t.Fatalf("expected min order 1, got %v", svc.MinOrder)
		}
		if svc.MaxOrder != nil {
			t.Fatalf("expected nil max order")
		}
		if !svc.Step.Equal(decimal.RequireFromString("0.5")) {
			t.Fatalf("expected step 0.5, got %s", svc.Step)
		}
		if len(svc.CustomAttributes) != 1 || svc.CustomAttributes[0].Key != "warranty" {
			t.Fatalf("unexpected custom attributes: %+v", svc.CustomAttributes)
		}
	})
}
