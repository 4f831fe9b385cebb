package domain

import "testing"

func TestPence(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{500, 50000},
		{425, 42500},
		{12.344, 1234},
		{12.346, 1235},
		{0.005, 1},
		{0, 0},
		{75, 7500},
	}
	for _, c := range cases {
		if got := Pence(c.amount); got != c.want {
			t.Fatalf("Pence(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}

func TestDecimalString(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{500, "500"},
		{75.5, "75.5"},
		{0, "0"},
		{425.25, "425.25"},
	}
	for _, c := range cases {
		if got := DecimalString(c.amount); got != c.want {
			t.Fatalf("DecimalString(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	if got := ParseDecimal("75"); got != 75 {
		t.Fatalf("ParseDecimal(\"75\") = %v, want 75", got)
	}
	if got := ParseDecimal(""); got != 0 {
		t.Fatalf("ParseDecimal(\"\") = %v, want 0", got)
	}
	if got := ParseDecimal("not-a-number"); got != 0 {
		t.Fatalf("ParseDecimal garbage = %v, want 0", got)
	}
}

func TestPounds(t *testing.T) {
	if got := Pounds(50000); got != "500.00" {
		t.Fatalf("Pounds(50000) = %q, want \"500.00\"", got)
	}
	if got := Pounds(1234); got != "12.34" {
		t.Fatalf("Pounds(1234) = %q, want \"12.34\"", got)
	}
}
