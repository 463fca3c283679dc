package duration

import (
	"encoding/json"
	"math"
	"testing"
)

func intPtr(v int) *int { return &v }

func equalBreakdown(a, b Breakdown) bool {
	eq := func(x, y *int) bool {
		if x == nil || y == nil {
			return x == y
		}
		return *x == *y
	}
	return eq(a.Years, b.Years) && eq(a.Months, b.Months) && eq(a.Days, b.Days) &&
		eq(a.Hours, b.Hours) && eq(a.Minutes, b.Minutes) && eq(a.Seconds, b.Seconds)
}

func TestClassifyDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    Breakdown
		text    string
	}{
		{name: "Minutes and seconds", seconds: 65, want: Breakdown{Minutes: intPtr(1), Seconds: intPtr(5)}, text: "1 min 5 s"},
		{name: "Seconds dropped with hours", seconds: 7205, want: Breakdown{Hours: intPtr(2)}, text: "2 h"},
		{name: "Sub-minute", seconds: 45, want: Breakdown{Seconds: intPtr(45)}, text: "45 s"},
		{name: "Zero", seconds: 0, want: Breakdown{Seconds: intPtr(0)}, text: "0 s"},
		{name: "Fraction is floored", seconds: 59.9, want: Breakdown{Seconds: intPtr(59)}, text: "59 s"},
		{name: "Whole minutes", seconds: 300, want: Breakdown{Minutes: intPtr(5)}, text: "5 min"},
		{name: "Hours and minutes", seconds: 3*Hour + 20*Minute + 7, want: Breakdown{Hours: intPtr(3), Minutes: intPtr(20)}, text: "3 h 20 min"},
		{name: "Days", seconds: 2*Day + 5, want: Breakdown{Days: intPtr(2)}, text: "2 d"},
		{name: "Exactly one year", seconds: Year, want: Breakdown{Years: intPtr(1), Days: intPtr(5)}, text: "1 y 5 d"},
		{
			name:    "Year with minutes drops seconds",
			seconds: Year + 65,
			want:    Breakdown{Years: intPtr(1), Days: intPtr(5), Minutes: intPtr(1)},
			text:    "1 y 5 d 1 min",
		},
		{name: "Twelve months", seconds: 12 * Month, want: Breakdown{Months: intPtr(12)}, text: "12 mo"},
		{
			name:    "All large units",
			seconds: Year + 2*Month + 3*Day + 4*Hour + 5*Minute + 6,
			want:    Breakdown{Years: intPtr(1), Months: intPtr(2), Days: intPtr(8), Hours: intPtr(4), Minutes: intPtr(5)},
			text:    "1 y 2 mo 8 d 4 h 5 min",
		},
		{name: "Negative", seconds: -65, want: Breakdown{Seconds: intPtr(-5)}, text: "-5 s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyDuration(tt.seconds)
			if !ok {
				t.Fatal("Expected a breakdown")
			}
			if !equalBreakdown(got, tt.want) {
				gotJSON, _ := json.Marshal(got)
				wantJSON, _ := json.Marshal(tt.want)
				t.Errorf("Expected %s, got %s", wantJSON, gotJSON)
			}
			if text := Format(got); text != tt.text {
				t.Errorf("Expected %q, got %q", tt.text, text)
			}
		})
	}
}

func TestClassifyDurationNotANumber(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := ClassifyDuration(v); ok {
			t.Errorf("Expected no breakdown for %v", v)
		}
		if got := FormatSeconds(v); got != "" {
			t.Errorf("Expected empty text for %v, got %q", v, got)
		}
	}
}

func TestClassifyValue(t *testing.T) {
	t.Run("NaN passthrough", func(t *testing.T) {
		got, ok := ClassifyValue(math.NaN()).(float64)
		if !ok || !math.IsNaN(got) {
			t.Errorf("Expected NaN back, got %v", got)
		}
	})

	t.Run("String passthrough", func(t *testing.T) {
		if got := ClassifyValue("x"); got != "x" {
			t.Errorf("Expected \"x\" back, got %v", got)
		}
	})

	t.Run("Nil passthrough", func(t *testing.T) {
		if got := ClassifyValue(nil); got != nil {
			t.Errorf("Expected nil back, got %v", got)
		}
	})

	t.Run("Numbers", func(t *testing.T) {
		for _, v := range []any{65, int64(65), 65.0, json.Number("65")} {
			b, ok := ClassifyValue(v).(Breakdown)
			if !ok {
				t.Fatalf("Expected a Breakdown for %T", v)
			}
			if !equalBreakdown(b, Breakdown{Minutes: intPtr(1), Seconds: intPtr(5)}) {
				t.Errorf("Unexpected breakdown for %T: %+v", v, b)
			}
		}
	})

	t.Run("Invalid json.Number", func(t *testing.T) {
		if got := ClassifyValue(json.Number("abc")); got != json.Number("abc") {
			t.Errorf("Expected passthrough, got %v", got)
		}
	})
}

func TestBreakdownJSON(t *testing.T) {
	b, _ := ClassifyDuration(65)
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != `{"minutes":1,"seconds":5}` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	b, _ = ClassifyDuration(7205)
	data, _ = json.Marshal(b)
	if string(data) != `{"hours":2}` {
		t.Errorf("Unexpected JSON: %s", data)
	}
}
