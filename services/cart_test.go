package services

import "testing"

func TestCartAdd_AccumulatesSameModel(t *testing.T) {
	var cart Cart
	cart.Add("KSH-0800", "Solar boyler", 2215, 2)
	cart.Add("KSH-0800", "Solar boyler", 2215, 3)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestCartAdd_PreservesInsertionOrder(t *testing.T) {
	var cart Cart
	cart.Add("B", "second", 100, 1)
	cart.Add("A", "first alphabetically but added later", 200, 1)
	cart.Add("C", "third", 300, 1)

	lines := cart.Lines()
	want := []string{"B", "A", "C"}
	for i, m := range want {
		if lines[i].Model != m {
			t.Errorf("line %d model = %q, want %q", i, lines[i].Model, m)
		}
	}
}

func TestCartAdd_ClampsQuantity(t *testing.T) {
	var cart Cart
	cart.Add("X", "x", 10, 0)
	if got := cart.Lines()[0].Quantity; got != 1 {
		t.Errorf("expected quantity clamped to 1, got %d", got)
	}
}

func TestCartApplyEdits_DeletesFlaggedLineOnly(t *testing.T) {
	var cart Cart
	cart.Add("A", "a", 100, 1)
	cart.Add("B", "b", 200, 2)
	cart.Add("C", "c", 300, 3)

	cart.ApplyEdits([]LineEdit{
		{Model: "A", Quantity: 1},
		{Model: "B", Quantity: 2, Delete: true},
		{Model: "C", Quantity: 3},
	})

	lines := cart.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Model != "A" || lines[1].Model != "C" {
		t.Errorf("unexpected order after delete: %q, %q", lines[0].Model, lines[1].Model)
	}
	if lines[0].Quantity != 1 || lines[1].Quantity != 3 {
		t.Errorf("quantities changed unexpectedly: %d, %d", lines[0].Quantity, lines[1].Quantity)
	}
}

func TestCartApplyEdits_PriceCannotBeTampered(t *testing.T) {
	var cart Cart
	cart.Add("A", "a", 2215, 1)

	// The edit surface only carries model + qty + delete flag, so an edited
	// view can never overwrite the frozen list price.
	cart.ApplyEdits([]LineEdit{{Model: "A", Quantity: 4}})

	lines := cart.Lines()
	if lines[0].ListPrice != 2215 {
		t.Errorf("list price changed: got %v, want 2215", lines[0].ListPrice)
	}
	if lines[0].Quantity != 4 {
		t.Errorf("quantity = %d, want 4", lines[0].Quantity)
	}
}

func TestCartApplyEdits_IgnoresUnknownModels(t *testing.T) {
	var cart Cart
	cart.Add("A", "a", 100, 1)

	cart.ApplyEdits([]LineEdit{
		{Model: "A", Quantity: 2},
		{Model: "GHOST", Quantity: 9},
	})

	if cart.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", cart.Len())
	}
}

func TestCartApplyEdits_DuplicateEditRowsKeepOneLine(t *testing.T) {
	var cart Cart
	cart.Add("A", "a", 100, 1)
	cart.Add("B", "b", 200, 1)

	// A forged form can repeat the same model field; only the first edit
	// for a model may count.
	cart.ApplyEdits([]LineEdit{
		{Model: "A", Quantity: 2},
		{Model: "A", Quantity: 3},
		{Model: "B", Quantity: 1},
	})

	if cart.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", cart.Len(), cart.Lines())
	}
	lines := cart.Lines()
	if lines[0].Model != "A" || lines[0].Quantity != 2 {
		t.Errorf("line A = %+v, want quantity 2 from the first edit", lines[0])
	}
}

func TestCartReset(t *testing.T) {
	var cart Cart
	cart.Add("A", "a", 100, 1)
	cart.Reset()
	if cart.Len() != 0 {
		t.Errorf("expected empty cart after reset, got %d lines", cart.Len())
	}
}

func TestCartTotals_PureAndScalesWithDiscount(t *testing.T) {
	var cart Cart
	cart.Add("KSH-0800", "Solar boyler", 2215, 1)

	at40 := cart.Totals(40)
	if got := at40.Lines[0].UnitPrice; got != 1329 {
		t.Errorf("unit price at 40%% = %v, want 1329", got)
	}

	at50 := cart.Totals(50)
	if got := at50.Lines[0].UnitPrice; got != 1107.5 {
		t.Errorf("unit price at 50%% = %v, want 1107.5", got)
	}

	// Stored list price must survive repeated totals calls untouched.
	if got := cart.Lines()[0].ListPrice; got != 2215 {
		t.Errorf("stored list price mutated: got %v, want 2215", got)
	}
}

func TestCartTotals_GrandTotalIsSumOfLines(t *testing.T) {
	var cart Cart
	cart.Add("A", "a", 1000, 2)
	cart.Add("B", "b", 500, 3)
	cart.Add("C", "c", 815, 1)

	totals := cart.Totals(40)

	var sum float64
	for _, l := range totals.Lines {
		if l.LineTotal != l.UnitPrice*float64(l.Quantity) {
			t.Errorf("line %s total %v != unit %v x qty %d", l.Model, l.LineTotal, l.UnitPrice, l.Quantity)
		}
		sum += l.LineTotal
	}
	if totals.GrandTotal != sum {
		t.Errorf("grand total %v != sum of line totals %v", totals.GrandTotal, sum)
	}
}

func TestCartTotals_EndToEndExample(t *testing.T) {
	var cart Cart
	cart.Add("X1", "Demo boiler", 1000, 2)

	totals := cart.Totals(40)
	if got := totals.Lines[0].LineTotal; got != 1200 {
		t.Errorf("line total = %v, want 1200", got)
	}
	if totals.GrandTotal != 1200 {
		t.Errorf("grand total = %v, want 1200", totals.GrandTotal)
	}
}

func TestDiscountedUnit(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 1000, 0, 1000},
		{"forty percent", 2215, 40, 1329},
		{"half", 2215, 50, 1107.5},
		{"full discount", 500, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiscountedUnit(tt.price, tt.discount); got != tt.want {
				t.Errorf("DiscountedUnit(%v, %v) = %v, want %v", tt.price, tt.discount, got, tt.want)
			}
		})
	}
}
