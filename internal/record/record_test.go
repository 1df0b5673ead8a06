package record

import "testing"

func TestCoerceInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    any
		want   int64
		wantOK bool
	}{
		{name: "float truncates down", raw: float64(11.9), want: 11, wantOK: true},
		{name: "negative float truncates toward zero", raw: float64(-11.9), want: -11, wantOK: true},
		{name: "int64 passthrough", raw: int64(42), want: 42, wantOK: true},
		{name: "numeric string", raw: "250000", want: 250000, wantOK: true},
		{name: "float string truncates", raw: "99.75", want: 99, wantOK: true},
		{name: "padded string", raw: "  7 ", want: 7, wantOK: true},
		{name: "non-numeric string", raw: "n/a", wantOK: false},
		{name: "empty string", raw: "", wantOK: false},
		{name: "bool is not numeric", raw: true, wantOK: false},
		{name: "nil", raw: nil, wantOK: false},
		{name: "object", raw: map[string]any{"v": 1}, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CoerceInt64(tc.raw)
			if ok != tc.wantOK {
				t.Fatalf("ok=%v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Fatalf("got=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestCoerceString(t *testing.T) {
	t.Parallel()

	if got, ok := CoerceString(float64(12345)); !ok || got != "12345" {
		t.Fatalf("integral float: got=%q ok=%v", got, ok)
	}
	if got, ok := CoerceString(float64(1.5)); !ok || got != "1.5" {
		t.Fatalf("fractional float: got=%q ok=%v", got, ok)
	}
	if got, ok := CoerceString("  Bayern  "); !ok || got != "Bayern" {
		t.Fatalf("string trim: got=%q ok=%v", got, ok)
	}
	if _, ok := CoerceString(true); ok {
		t.Fatal("bool should not coerce to string")
	}
}

func TestCoerceBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    any
		want   bool
		wantOK bool
	}{
		{raw: true, want: true, wantOK: true},
		{raw: float64(1), want: true, wantOK: true},
		{raw: float64(0), want: false, wantOK: true},
		{raw: "true", want: true, wantOK: true},
		{raw: "0", want: false, wantOK: true},
		{raw: "maybe", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := CoerceBool(tc.raw)
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Fatalf("CoerceBool(%v) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestIntAny_SkipsIncoercibleCandidate(t *testing.T) {
	t.Parallel()

	rec := Record{
		"p":      "not-a-number",
		"points": float64(87),
	}

	got, ok := rec.IntAny("p", "points")
	if !ok {
		t.Fatal("expected a value from the second candidate")
	}
	if got != 87 {
		t.Fatalf("got=%d, want 87", got)
	}
}

func TestIntAny_AllCandidatesExhausted(t *testing.T) {
	t.Parallel()

	rec := Record{"p": "x", "q": []any{1}}
	if _, ok := rec.IntAny("p", "q", "missing"); ok {
		t.Fatal("expected absent result")
	}
}

func TestStringAny_SkipsEmpty(t *testing.T) {
	t.Parallel()

	rec := Record{"n": "   ", "name": "Musiala"}
	got, ok := rec.StringAny("n", "name")
	if !ok || got != "Musiala" {
		t.Fatalf("got=%q ok=%v", got, ok)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	rec, err := Decode([]byte(`{"id": "l1", "it": [{"i": "u1"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, _ := rec.String("id"); got != "l1" {
		t.Fatalf("id=%q", got)
	}
	items := rec.Records("it")
	if len(items) != 1 {
		t.Fatalf("records len=%d, want 1", len(items))
	}
	if got, _ := items[0].String("i"); got != "u1" {
		t.Fatalf("nested id=%q", got)
	}

	if _, err := Decode([]byte(`[1,2]`)); err == nil {
		t.Fatal("array payload should not decode as a record")
	}
}

func TestChildAny(t *testing.T) {
	t.Parallel()

	rec := Record{"data": map[string]any{"name": "x"}, "user": "not-an-object"}
	child := rec.ChildAny("user", "data")
	if child == nil {
		t.Fatal("expected child record")
	}
	if got, _ := child.String("name"); got != "x" {
		t.Fatalf("name=%q", got)
	}
}
