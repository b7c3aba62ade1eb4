package common

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce[float32](0, 0, 2, 3); got != 2 {
		t.Errorf("expected first non-zero value 2, got %v", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected zero value, got %q", got)
	}
}

func TestValueOr(t *testing.T) {
	fallback := [3]float32{0, 0, 1}
	explicitZero := [3]float32{}

	testCases := map[string]struct {
		p    *[3]float32
		want [3]float32
	}{
		"Omitted":      {p: nil, want: fallback},
		"ExplicitZero": {p: &explicitZero, want: explicitZero},
		"Set":          {p: &[3]float32{1, 2, 3}, want: [3]float32{1, 2, 3}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := ValueOr(tt.p, fallback); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
