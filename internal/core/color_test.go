package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{ColorCount, ""},
		{Color(200), ""},
	}

	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tc.color, got, tc.want)
		}
	}
}

func TestEveryColorHasCode(t *testing.T) {
	for c := ColorRed; c < ColorCount; c++ {
		if c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
}
