package entity

import (
	"encoding/json"
	"testing"
)

func TestNewPrice(t *testing.T) {
	p, err := NewPrice("5.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.String() != "5.50" {
		t.Fatalf("expected 5.50 got %s", p.String())
	}

	if _, err := NewPrice("-1.00"); err == nil {
		t.Fatal("expected error for negative price")
	}
	if _, err := NewPrice("5.555"); err == nil {
		t.Fatal("expected error for three decimals")
	}
	if _, err := NewPrice("abc"); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
}

func TestPriceJSON(t *testing.T) {
	b, err := json.Marshal(MustPrice("5.5"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"5.50"` {
		t.Fatalf("expected \"5.50\" got %s", b)
	}

	var fromString Price
	if err := json.Unmarshal([]byte(`"12.30"`), &fromString); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if fromString.String() != "12.30" {
		t.Fatalf("expected 12.30 got %s", fromString.String())
	}

	// Un nombre JSON nu est toléré en entrée.
	var fromNumber Price
	if err := json.Unmarshal([]byte(`7.9`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.String() != "7.90" {
		t.Fatalf("expected 7.90 got %s", fromNumber.String())
	}

	var bad Price
	if err := json.Unmarshal([]byte(`"-3.00"`), &bad); err == nil {
		t.Fatal("expected error for negative price")
	}
}
