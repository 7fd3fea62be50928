package reconcile

// Package reconcile holds the trip reconciliation core: the inventory
// ledger, the sale/receipt calculator and the validation gate. Everything
// here is pure - plain structs in, plain values out - so the rules can be
// tested without a database or an HTTP harness.

// Quantity pairs a bird count with a weight in kg.
type Quantity struct {
	Birds  int
	Weight float64
}

func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{Birds: q.Birds + o.Birds, Weight: q.Weight + o.Weight}
}

func (q Quantity) Sub(o Quantity) Quantity {
	return Quantity{Birds: q.Birds - o.Birds, Weight: q.Weight - o.Weight}
}

// PurchaseLine, SaleLine and StockLine are the ledger-relevant slices of
// the persisted rows, in trip order.
type PurchaseLine struct {
	Birds  int
	Weight float64
	Amount float64
}

type SaleLine struct {
	Birds     int
	Weight    float64
	Amount    float64
	Received  float64
	IsReceipt bool
}

type StockLine struct {
	Birds  int
	Weight float64
	Value  float64
}

// TripSnapshot is a read-only view of a trip's recorded activity. It is
// rebuilt from the authoritative trip row on every use, never cached.
type TripSnapshot struct {
	// Opening stock inherited by a transferred trip. Counts as purchased
	// quantity; original trips leave it zero.
	Opening     Quantity
	OpeningRate float64

	Purchases []PurchaseLine
	Sales     []SaleLine
	Stocks    []StockLine

	// Quantity already moved out via transfer.
	Transferred Quantity
}

// Purchased totals opening stock plus all purchases.
func (s TripSnapshot) Purchased() Quantity {
	total := s.Opening
	for _, p := range s.Purchases {
		total = total.Add(Quantity{Birds: p.Birds, Weight: p.Weight})
	}
	return total
}

// Sold totals all sale lines. Receipts carry zero quantity so they fall
// out naturally.
func (s TripSnapshot) Sold() Quantity {
	var total Quantity
	for _, l := range s.Sales {
		total = total.Add(Quantity{Birds: l.Birds, Weight: l.Weight})
	}
	return total
}

// Stocked totals all stock entries.
func (s TripSnapshot) Stocked() Quantity {
	var total Quantity
	for _, l := range s.Stocks {
		total = total.Add(Quantity{Birds: l.Birds, Weight: l.Weight})
	}
	return total
}

// Remaining is what is still available to sell or transfer:
// purchased minus sold minus already transferred. With no purchases the
// result is zero, not an error.
func (s TripSnapshot) Remaining() Quantity {
	return s.Purchased().Sub(s.Sold()).Sub(s.Transferred)
}

// RemainingExcludingSale is Remaining with the sale at index i added
// back, so an editor comparing its new values does not double-count its
// own prior reservation. An out-of-range index leaves the result
// unadjusted.
func (s TripSnapshot) RemainingExcludingSale(i int) Quantity {
	r := s.Remaining()
	if i >= 0 && i < len(s.Sales) {
		r = r.Add(Quantity{Birds: s.Sales[i].Birds, Weight: s.Sales[i].Weight})
	}
	return r
}

// AvailableForStock is what is left after sales AND existing stock
// reservations.
func (s TripSnapshot) AvailableForStock() Quantity {
	return s.Remaining().Sub(s.Stocked())
}

// AvailableForStockExcluding adds back the stock entry at index i, same
// add-back rule as sale edits.
func (s TripSnapshot) AvailableForStockExcluding(i int) Quantity {
	a := s.AvailableForStock()
	if i >= 0 && i < len(s.Stocks) {
		a = a.Add(Quantity{Birds: s.Stocks[i].Birds, Weight: s.Stocks[i].Weight})
	}
	return a
}

// SuggestMortality computes the completion-time residual:
// purchased - sold - stocked - transferred. Unaccounted birds are assumed
// dead; the caller shows this as an editable pre-filled suggestion. A
// negative residual (over-sold data entry) is clamped to zero.
func (s TripSnapshot) SuggestMortality() int {
	m := s.Purchased().Birds - s.Sold().Birds - s.Stocked().Birds - s.Transferred.Birds
	if m < 0 {
		return 0
	}
	return m
}
