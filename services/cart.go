package services

// CartLine is one product entry in the quote. Description and list price are
// copied from the catalog when the line is added and stay frozen even if the
// catalog is replaced later.
type CartLine struct {
	Model       string
	Description string
	ListPrice   float64
	Quantity    int
}

// Cart is the ordered set of quote lines. At most one line exists per model;
// adding a model again accumulates its quantity.
type Cart struct {
	lines []CartLine
}

// LineEdit is one row of a user-edited cart view.
type LineEdit struct {
	Model    string
	Quantity int
	Delete   bool
}

// Add appends a line for the given model, or accumulates the quantity when a
// line for that model already exists. Insertion order is preserved.
func (c *Cart) Add(model, description string, listPrice float64, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].Model == model {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		Model:       model,
		Description: description,
		ListPrice:   listPrice,
		Quantity:    qty,
	})
}

// ApplyEdits replaces the line set from an edited view. Rows flagged for
// deletion are excluded and quantities are taken from the edit, but the list
// price is always re-resolved from the original line so the edit surface
// cannot tamper with pricing. Edits for unknown models are ignored.
func (c *Cart) ApplyEdits(edits []LineEdit) {
	original := make(map[string]CartLine, len(c.lines))
	for _, l := range c.lines {
		original[l.Model] = l
	}

	var keep []CartLine
	for _, e := range edits {
		if e.Delete {
			continue
		}
		orig, ok := original[e.Model]
		if !ok {
			continue
		}
		// Consume the line so a duplicated edit row cannot split one model
		// across several lines.
		delete(original, e.Model)
		qty := e.Quantity
		if qty < 1 {
			qty = 1
		}
		keep = append(keep, CartLine{
			Model:       orig.Model,
			Description: orig.Description,
			ListPrice:   orig.ListPrice,
			Quantity:    qty,
		})
	}
	c.lines = keep
}

// Reset clears all lines.
func (c *Cart) Reset() {
	c.lines = nil
}

// Lines returns a copy of the current line set in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}
