package stats

import "testing"

func TestNewSchemaNormalizes(t *testing.T) {
	s := NewSchema([]string{" Unit Price ", "QUANTITY", "Percentage Discount"})
	want := []string{"unit price", "quantity", "percentage discount"}
	if len(s) != len(want) {
		t.Fatalf("schema len = %d, want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("schema[%d] = %q, want %q", i, s[i], want[i])
		}
	}
}

func TestDecodeRowCoercionBoundary(t *testing.T) {
	schema := NewSchema([]string{"a", "b", "c", "d"})
	row := DecodeRow([]string{"007", "abc", "", " 12.5 "}, schema)

	if v, ok := row["a"].(float64); !ok || v != 7 {
		t.Fatalf("a = %#v, want float64 7", row["a"])
	}
	if v, ok := row["b"].(string); !ok || v != "abc" {
		t.Fatalf("b = %#v, want string %q", row["b"], "abc")
	}
	// The empty field is numerically valid and coerces to zero, not to
	// a missing marker.
	if v, ok := row["c"].(float64); !ok || v != 0 {
		t.Fatalf("c = %#v, want float64 0", row["c"])
	}
	if v, ok := row["d"].(float64); !ok || v != 12.5 {
		t.Fatalf("d = %#v, want float64 12.5", row["d"])
	}
}

func TestDecodeRowShortLine(t *testing.T) {
	schema := NewSchema([]string{"a", "b", "c"})
	row := DecodeRow([]string{"1"}, schema)
	if len(row) != 1 {
		t.Fatalf("row len = %d, want 1", len(row))
	}
	if _, ok := row["b"]; ok {
		t.Fatalf("b should be absent, got %#v", row["b"])
	}
	if _, ok := row["c"]; ok {
		t.Fatalf("c should be absent, got %#v", row["c"])
	}
}

func TestDecodeRowExtraTokensDiscarded(t *testing.T) {
	schema := NewSchema([]string{"a"})
	row := DecodeRow([]string{"1", "2", "3"}, schema)
	if len(row) != 1 {
		t.Fatalf("row len = %d, want 1", len(row))
	}
	if v, _ := row.Number("a"); v != 1 {
		t.Fatalf("a = %v, want 1", v)
	}
}

func TestDecodeRowDuplicateHeaderLastPositionWins(t *testing.T) {
	schema := NewSchema([]string{"a", "a"})
	row := DecodeRow([]string{"1", "2"}, schema)
	if len(row) != 1 {
		t.Fatalf("row len = %d, want 1", len(row))
	}
	if v, _ := row.Number("a"); v != 2 {
		t.Fatalf("a = %v, want 2 (later position overwrites)", v)
	}
}

func TestRowNumber(t *testing.T) {
	row := Row{"n": float64(3), "s": "abc"}
	if v, ok := row.Number("n"); !ok || v != 3 {
		t.Fatalf("n = %v, %v", v, ok)
	}
	if _, ok := row.Number("s"); ok {
		t.Fatal("non-numeric field reported ok")
	}
	if _, ok := row.Number("missing"); ok {
		t.Fatal("absent field reported ok")
	}
}
