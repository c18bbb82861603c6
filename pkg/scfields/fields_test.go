package scfields

import (
	"math"
	"testing"
)

func TestPriceTier_InfinityRoundTrip(t *testing.T) {
	tier := PriceTier{Lower: 100.0, Upper: PosInfinity, Price: 0.05}

	upper, err := tier.UpperValue()
	if err != nil {
		t.Fatalf("UpperValue() error = %v", err)
	}
	if !math.IsInf(upper, 1) {
		t.Errorf("UpperValue() = %v, want +Inf", upper)
	}

	lower, err := tier.LowerValue()
	if err != nil {
		t.Fatalf("LowerValue() error = %v", err)
	}
	if lower != 100.0 {
		t.Errorf("LowerValue() = %v, want 100.0", lower)
	}
}

func TestPriceTier_NegativeInfinity(t *testing.T) {
	tier := PriceTier{Lower: NegInfinity, Upper: 50.0, Price: 1}
	lower, err := tier.LowerValue()
	if err != nil {
		t.Fatalf("LowerValue() error = %v", err)
	}
	if !math.IsInf(lower, -1) {
		t.Errorf("LowerValue() = %v, want -Inf", lower)
	}
}

func TestPriceTier_InvalidBound(t *testing.T) {
	tier := PriceTier{Lower: "not-a-number", Upper: 10.0}
	if _, err := tier.LowerValue(); err == nil {
		t.Fatal("expected error for non-numeric, non-Infinity bound")
	}
}

func TestJSONColumn_ScanAndValue(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	var col JSONColumn[[]point]
	if err := col.Scan([]byte(`[{"x":1,"y":2},{"x":3,"y":4}]`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(col.Data) != 2 || col.Data[1].X != 3 {
		t.Fatalf("Scan() produced %+v", col.Data)
	}

	dv, err := col.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if dv == nil {
		t.Fatal("Value() returned nil")
	}
}

func TestJSONColumn_ScanNilIsNoop(t *testing.T) {
	var col JSONColumn[[]int]
	if err := col.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if col.Data != nil {
		t.Errorf("expected zero value after Scan(nil), got %v", col.Data)
	}
}

func TestJSONColumn_Value(t *testing.T) {
	col := JSONColumn[map[string]int]{Data: map[string]int{"a": 1}}
	dv, err := col.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	s, ok := dv.(string)
	if !ok || s != `{"a":1}` {
		t.Errorf("Value() = %v, want {\"a\":1}", dv)
	}
}
