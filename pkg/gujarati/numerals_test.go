package gujarati

import (
	"strconv"
	"testing"
	"time"
)

func TestToGujaratiNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "૦"},
		{7, "૭"},
		{42, "૪૨"},
		{500, "૫૦૦"},
		{1234567890, "૧૨૩૪૫૬૭૮૯૦"},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.in, 10), func(t *testing.T) {
			if got := ToGujaratiNumber(tt.in); got != tt.want {
				t.Errorf("ToGujaratiNumber(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToGujaratiDigitsIsPositional(t *testing.T) {
	for _, n := range []int64{0, 9, 10, 99, 101, 2500, 3700, 99999, 1000001, 987654321} {
		ascii := strconv.FormatInt(n, 10)
		got := []rune(ToGujaratiNumber(n))
		if len(got) != len(ascii) {
			t.Fatalf("ToGujaratiNumber(%d) has %d runes, want %d", n, len(got), len(ascii))
		}
		for i, d := range ascii {
			if want := gujaratiDigits[d-'0']; got[i] != want {
				t.Errorf("ToGujaratiNumber(%d)[%d] = %q, want %q", n, i, got[i], want)
			}
		}
		if back := FromGujaratiDigits(string(got)); back != ascii {
			t.Errorf("FromGujaratiDigits(%q) = %q, want %q", string(got), back, ascii)
		}
	}
}

func TestToGujaratiDigitsKeepsSeparators(t *testing.T) {
	if got, want := ToGujaratiDigits("₹ 1,100/-"), "₹ ૧,૧૦૦/-"; got != want {
		t.Errorf("ToGujaratiDigits() = %q, want %q", got, want)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)
	if got, want := FormatDate(d), "૦૫/૦૩/૨૦૨૪"; got != want {
		t.Errorf("FormatDate() = %q, want %q", got, want)
	}
}
