package funding

import (
	"testing"
)

func fl(v float64) *float64 {
	return &v
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		isFinancial bool
		target      *float64
		saved       *float64
		want        float64
	}{
		{
			name:        "NonFinancial",
			isFinancial: false,
			target:      fl(1000),
			saved:       fl(500),
			want:        0,
		},
		{
			name:        "NoTarget",
			isFinancial: true,
			want:        0,
		},
		{
			name:        "ZeroTarget",
			isFinancial: true,
			target:      fl(0),
			saved:       fl(100),
			want:        0,
		},
		{
			name:        "Partial",
			isFinancial: true,
			target:      fl(1000),
			saved:       fl(250),
			want:        25,
		},
		{
			name:        "RoundedToOneDecimal",
			isFinancial: true,
			target:      fl(3),
			saved:       fl(1),
			want:        33.3,
		},
		{
			name:        "RoundHalfAwayFromZero",
			isFinancial: true,
			target:      fl(800),
			saved:       fl(100),
			want:        12.5,
		},
		{
			name:        "ClampedOverTarget",
			isFinancial: true,
			target:      fl(100),
			saved:       fl(150),
			want:        100,
		},
		{
			name:        "MissingSaved",
			isFinancial: true,
			target:      fl(1000),
			want:        0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.isFinancial, tt.target, tt.saved); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFullyFunded(t *testing.T) {
	tests := []struct {
		name        string
		isFinancial bool
		target      *float64
		saved       *float64
		want        bool
	}{
		{
			name:        "NonFinancial",
			isFinancial: false,
			target:      fl(100),
			saved:       fl(200),
			want:        false,
		},
		{
			name:        "UnderTarget",
			isFinancial: true,
			target:      fl(1000),
			saved:       fl(250),
			want:        false,
		},
		{
			name:        "ExactTarget",
			isFinancial: true,
			target:      fl(100),
			saved:       fl(100),
			want:        true,
		},
		{
			name:        "OverTarget",
			isFinancial: true,
			target:      fl(100),
			saved:       fl(150),
			want:        true,
		},
		{
			name:        "MissingSaved",
			isFinancial: true,
			target:      fl(100),
			want:        false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullyFunded(tt.isFinancial, tt.target, tt.saved); got != tt.want {
				t.Errorf("FullyFunded() = %v, want %v", got, tt.want)
			}
		})
	}
}
