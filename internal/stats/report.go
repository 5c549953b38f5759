package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/salesmax-cli/internal/utils"
)

// MetricResult pairs one metric with its final best score and record.
// Value stays nil when the tracker never saw a qualifying row.
type MetricResult struct {
	ID     string
	Label  string
	Value  *float64
	Record Row
}

// Report is the projection of final tracker state after one full pass.
// Views are pure: nothing is recomputed here.
type Report struct {
	Name    string
	Rows    int
	Schema  Schema
	Results []MetricResult
}

type jsonResult struct {
	Value  *float64 `json:"value"`
	Record Row      `json:"record"`
}

// JSON renders the structured view: one object keyed by metric id,
// each value {value, record}, with unset trackers exported as nulls.
func (r *Report) JSON() ([]byte, error) {
	out := make(map[string]jsonResult, len(r.Results))
	for _, res := range r.Results {
		out[res.ID] = jsonResult{Value: res.Value, Record: res.Record}
	}
	return utils.PrettyJSON(out)
}

// Text renders one block per metric in the contractual order: a label
// line, the value (or "no data"), and the best record's fields in
// schema order. Blocks are separated by a blank line.
func (r *Report) Text() string {
	var b strings.Builder
	for i, res := range r.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(res.Label)
		b.WriteString("\n")
		if res.Value == nil {
			b.WriteString("  no data\n")
			continue
		}
		fmt.Fprintf(&b, "  value: %s\n", formatNumber(*res.Value))
		seen := make(map[string]bool, len(r.Schema))
		for _, field := range r.Schema {
			if seen[field] {
				continue
			}
			seen[field] = true
			v, ok := res.Record[field]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  %s: %s\n", field, formatValue(v))
		}
	}
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return formatNumber(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
