package model_test

import (
	"strings"
	"testing"

	"github.com/orgdir-lab/orgdir/pkg/domain/model"
)

func TestColorMapResolve(t *testing.T) {
	t.Parallel()

	m := model.DefaultColorMap()

	tests := []struct {
		name       string
		department string
		want       model.Color
	}{
		{
			name:       "empty department gets neutral default",
			department: "",
			want:       model.DefaultColor,
		},
		{
			name:       "exact table match",
			department: "Finance",
			want:       "#4CAF50",
		},
		{
			name:       "lowercase matches case-insensitively",
			department: "finance",
			want:       "#4CAF50",
		},
		{
			name:       "uppercase matches case-insensitively",
			department: "FINANCE",
			want:       "#4CAF50",
		},
		{
			name:       "multi-word department",
			department: "Research and Development",
			want:       "#FF6D00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := m.Resolve(tt.department); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.department, got, tt.want)
			}
		})
	}
}

func TestColorMapFallback(t *testing.T) {
	t.Parallel()

	m := model.DefaultColorMap()

	t.Run("unknown department gets hsl fallback", func(t *testing.T) {
		got := m.Resolve("Engineering")
		if !strings.HasPrefix(string(got), "hsl(") {
			t.Fatalf("expected hsl fallback, got %q", got)
		}
		if !strings.HasSuffix(string(got), ", 80%, 65%)") {
			t.Errorf("expected fixed saturation and lightness, got %q", got)
		}
	})

	t.Run("fallback is deterministic", func(t *testing.T) {
		first := m.Resolve("Platform Infrastructure")
		for i := 0; i < 10; i++ {
			if got := m.Resolve("Platform Infrastructure"); got != first {
				t.Fatalf("fallback changed between calls: %q vs %q", first, got)
			}
		}
	})

	t.Run("fallback is stable across resolver instances", func(t *testing.T) {
		other := model.DefaultColorMap()
		if a, b := m.Resolve("Legal"), other.Resolve("Legal"); a != b {
			t.Errorf("fallback differs across instances: %q vs %q", a, b)
		}
	})

	t.Run("distinct departments usually differ", func(t *testing.T) {
		if m.Resolve("Sales") == m.Resolve("Support") {
			t.Log("Warning: hue collision between Sales and Support")
		}
	})
}

func TestNewColorMap(t *testing.T) {
	t.Parallel()

	m := model.NewColorMap(map[string]model.Color{
		"Security": "#112233",
	})

	if got := m.Resolve("security"); got != "#112233" {
		t.Errorf("custom table lookup failed, got %q", got)
	}
	if got := m.Resolve(""); got != model.DefaultColor {
		t.Errorf("empty department should use default, got %q", got)
	}
}
