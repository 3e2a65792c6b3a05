package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{"identical intervals", 600, 660, 600, 660, true},
		{"partial overlap", 600, 660, 630, 690, true},
		{"a inside b", 630, 650, 600, 660, true},
		{"b inside a", 600, 660, 630, 650, true},
		{"touching endpoints do not overlap", 600, 660, 660, 720, false},
		{"touching endpoints reversed", 660, 720, 600, 660, false},
		{"disjoint", 600, 660, 700, 760, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}
