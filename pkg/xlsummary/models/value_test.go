package models

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected Value
	}{
		{"123", Number(123)},
		{"123.45", Number(123.45)},
		{"-100", Number(-100)},
		{"1e2", Number(100)},
		{"TRUE", Text("TRUE")},
		{"FALSE", Text("FALSE")},
		{"hello", Text("hello")},
		{"", Unknown()},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if !result.Equal(tt.expected) {
			t.Errorf("ParseValue(%q) = %v (kind %d), expected %v (kind %d)",
				tt.input, result, result.Kind(), tt.expected, tt.expected.Kind())
		}
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"unknown both", Unknown(), Unknown(), true},
		{"same number", Number(100), Number(100.0), true},
		{"int and float text", ParseValue("100"), ParseValue("100.0"), true},
		{"different number", Number(100), Number(150), false},
		{"unknown vs number", Unknown(), Number(0), false},
		{"number vs unknown", Number(0), Unknown(), false},
		{"number vs text", Number(42), Text("42"), false},
		{"same text", Text("n/a"), Text("n/a"), true},
		{"bool vs number", Bool(true), Number(1), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.expected {
			t.Errorf("%s: Equal = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{Number(150), "150"},
		{Number(12.5), "12.5"},
		{Text("abc"), "abc"},
		{Bool(false), "FALSE"},
		{Unknown(), "-"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestGridAt(t *testing.T) {
	grid := Grid{
		{Text("a"), Unknown()},
		{Unknown(), Number(2)},
	}

	if got := grid.At(2, 2); !got.Equal(Number(2)) {
		t.Errorf("At(2, 2) = %v, expected 2", got)
	}
	if got := grid.At(8, 4); !got.IsUnknown() {
		t.Errorf("At(8, 4) = %v, expected unknown", got)
	}
	if got := grid.At(0, 1); !got.IsUnknown() {
		t.Errorf("At(0, 1) = %v, expected unknown", got)
	}
	if grid.Width() != 2 {
		t.Errorf("Width() = %d, expected 2", grid.Width())
	}
}

func TestParseValueNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "Inf", "-infinity"} {
		if v := ParseValue(s); v.Kind() != KindText {
			t.Errorf("ParseValue(%q) kind = %d, expected text", s, v.Kind())
		}
	}
}
