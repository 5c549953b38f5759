package stats

import "math"

// Metric defines one incremental-maximum statistic: the fields a row
// must carry and the score computed from them. Score is only called on
// rows that passed the Required guard.
type Metric struct {
	ID       string
	Label    string
	Required []string
	Score    func(Row) float64
}

// Metrics returns the full metric set in its contractual output order.
func Metrics() []Metric {
	return []Metric{
		{
			ID:       "maxAmountWithoutDiscount",
			Label:    "Max amount without discount",
			Required: []string{FieldUnitPrice, FieldQuantity},
			Score: func(r Row) float64 {
				price, _ := r.Number(FieldUnitPrice)
				qty, _ := r.Number(FieldQuantity)
				return price * qty
			},
		},
		{
			ID:       "maxAmountWithDiscount",
			Label:    "Max amount with discount",
			Required: []string{FieldUnitPrice, FieldQuantity, FieldDiscount},
			Score: func(r Row) float64 {
				price, _ := r.Number(FieldUnitPrice)
				qty, _ := r.Number(FieldQuantity)
				disc, _ := r.Number(FieldDiscount)
				return price * qty * (1 - disc/100)
			},
		},
		{
			ID:       "maxQuantity",
			Label:    "Max quantity",
			Required: []string{FieldQuantity},
			Score: func(r Row) float64 {
				qty, _ := r.Number(FieldQuantity)
				return qty
			},
		},
		{
			ID:       "maxDiffWithDiscount",
			Label:    "Max diff with discount",
			Required: []string{FieldUnitPrice, FieldQuantity, FieldDiscount},
			Score: func(r Row) float64 {
				price, _ := r.Number(FieldUnitPrice)
				qty, _ := r.Number(FieldQuantity)
				disc, _ := r.Number(FieldDiscount)
				return qty * price * disc / 100
			},
		},
	}
}

// Tracker folds rows into the running maximum for one metric. The
// unset state is an explicit flag, never a numeric sentinel, and only
// translates to null at the export boundary.
type Tracker struct {
	metric Metric
	set    bool
	best   float64
	record Row
}

// NewTracker returns an empty tracker for the given metric.
func NewTracker(m Metric) *Tracker { return &Tracker{metric: m} }

// Metric returns the metric this tracker accumulates.
func (t *Tracker) Metric() Metric { return t.metric }

// Observe offers one row to the tracker. Rows missing a required field
// (or carrying non-numeric text in one) leave the state untouched.
// Equal scores replace the current best: ties go to the latest row.
func (t *Tracker) Observe(r Row) {
	for _, f := range t.metric.Required {
		if _, ok := r.Number(f); !ok {
			return
		}
	}
	score := t.metric.Score(r)
	if math.IsNaN(score) {
		return
	}
	if t.set && score < t.best {
		return
	}
	t.set = true
	t.best = score
	t.record = r
}

// Best reports the tracked maximum and the row that produced it. ok is
// false while no qualifying row has been seen.
func (t *Tracker) Best() (score float64, record Row, ok bool) {
	if !t.set {
		return 0, nil, false
	}
	return t.best, t.record, true
}
