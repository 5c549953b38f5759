package stats

import (
	"strings"
	"testing"
)

var exampleSchema = NewSchema([]string{"Unit Price", "Quantity", "Percentage Discount", "Item"})

func decodeLine(schema Schema, line string) Row {
	return DecodeRow(strings.Split(line, ","), schema)
}

func foldRows(schema Schema, lines ...string) map[string]*Tracker {
	trackers := make(map[string]*Tracker)
	ordered := make([]*Tracker, 0, 4)
	for _, m := range Metrics() {
		tr := NewTracker(m)
		trackers[m.ID] = tr
		ordered = append(ordered, tr)
	}
	for _, l := range lines {
		row := decodeLine(schema, l)
		for _, tr := range ordered {
			tr.Observe(row)
		}
	}
	return trackers
}

func requireBest(t *testing.T, tr *Tracker, wantScore float64, wantItem string) {
	t.Helper()
	score, record, ok := tr.Best()
	if !ok {
		t.Fatalf("%s: tracker unset", tr.Metric().ID)
	}
	if score != wantScore {
		t.Fatalf("%s: score = %v, want %v", tr.Metric().ID, score, wantScore)
	}
	if got := record["item"]; got != wantItem {
		t.Fatalf("%s: best record item = %#v, want %q", tr.Metric().ID, got, wantItem)
	}
}

func TestMetricsOrder(t *testing.T) {
	want := []string{"maxAmountWithoutDiscount", "maxAmountWithDiscount", "maxQuantity", "maxDiffWithDiscount"}
	metrics := Metrics()
	if len(metrics) != len(want) {
		t.Fatalf("metrics len = %d, want %d", len(metrics), len(want))
	}
	for i, m := range metrics {
		if m.ID != want[i] {
			t.Fatalf("metrics[%d] = %s, want %s", i, m.ID, want[i])
		}
	}
}

func TestWorkedExample(t *testing.T) {
	trackers := foldRows(exampleSchema,
		"10,5,0,alpha",
		"20,3,10,beta",
		"15,7,5,gamma",
	)
	requireBest(t, trackers["maxAmountWithoutDiscount"], 105, "gamma")
	requireBest(t, trackers["maxAmountWithDiscount"], 99.75, "gamma")
	requireBest(t, trackers["maxQuantity"], 7, "gamma")
	requireBest(t, trackers["maxDiffWithDiscount"], 6, "beta")
}

func TestTieBreakLatestRowWins(t *testing.T) {
	trackers := foldRows(exampleSchema,
		"10,5,0,first",
		"2,5,0,second",
	)
	requireBest(t, trackers["maxQuantity"], 5, "second")
	// Strictly smaller scores still lose.
	requireBest(t, trackers["maxAmountWithoutDiscount"], 50, "first")
}

func TestMissingFieldIsolation(t *testing.T) {
	schema := NewSchema([]string{"Unit Price", "Quantity", "Item"})
	trackers := foldRows(schema, "10,5,solo")

	requireBest(t, trackers["maxAmountWithoutDiscount"], 50, "solo")
	requireBest(t, trackers["maxQuantity"], 5, "solo")
	if _, _, ok := trackers["maxAmountWithDiscount"].Best(); ok {
		t.Fatal("maxAmountWithDiscount updated without a discount field")
	}
	if _, _, ok := trackers["maxDiffWithDiscount"].Best(); ok {
		t.Fatal("maxDiffWithDiscount updated without a discount field")
	}
}

func TestNonNumericRequiredFieldFailsGuard(t *testing.T) {
	trackers := foldRows(exampleSchema, "abc,5,0,junkprice")

	if _, _, ok := trackers["maxAmountWithoutDiscount"].Best(); ok {
		t.Fatal("maxAmountWithoutDiscount updated from non-numeric unit price")
	}
	requireBest(t, trackers["maxQuantity"], 5, "junkprice")
}

func TestMaxIsOrderInvariant(t *testing.T) {
	lines := []string{"10,5,0,alpha", "20,3,10,beta", "15,7,5,gamma"}
	reversed := []string{lines[2], lines[1], lines[0]}

	forward := foldRows(exampleSchema, lines...)
	backward := foldRows(exampleSchema, reversed...)
	for _, m := range Metrics() {
		fs, _, fok := forward[m.ID].Best()
		bs, _, bok := backward[m.ID].Best()
		if fok != bok || fs != bs {
			t.Fatalf("%s: forward (%v,%v) != backward (%v,%v)", m.ID, fs, fok, bs, bok)
		}
	}
}

func TestUnsetTrackerReportsNoValue(t *testing.T) {
	tr := NewTracker(Metrics()[0])
	if score, record, ok := tr.Best(); ok || score != 0 || record != nil {
		t.Fatalf("fresh tracker Best = (%v, %#v, %v), want unset", score, record, ok)
	}
}

func TestZeroScoreStillQualifies(t *testing.T) {
	// A zero-priced row must still beat the unset state.
	trackers := foldRows(exampleSchema, "0,0,0,zero")
	requireBest(t, trackers["maxAmountWithoutDiscount"], 0, "zero")
	requireBest(t, trackers["maxQuantity"], 0, "zero")
}
