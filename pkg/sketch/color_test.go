package sketch

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"Red", Color{255, 0, 0}, "#FF0000"},
		{"White", White, "#FFFFFF"},
		{"Black", Black, "#000000"},
		{"ZeroPadded", Color{1, 2, 3}, "#010203"},
		{"Mixed", Color{200, 120, 0}, "#C87800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Color
	}{
		{"InRange", 10, 20, 30, Color{10, 20, 30}},
		{"AboveRange", 300, 256, 1000, Color{255, 255, 255}},
		{"BelowRange", -1, -200, 0, Color{0, 0, 0}},
		{"MixedRange", -5, 128, 999, Color{0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGB(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}
