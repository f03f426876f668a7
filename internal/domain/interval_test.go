package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "partial overlap",
			aStart: "2026-03-20", aEnd: "2026-03-22",
			bStart: "2026-03-21", bEnd: "2026-03-23",
			want: true,
		},
		{
			name:   "one interval inside another",
			aStart: "2026-03-20", aEnd: "2026-03-28",
			bStart: "2026-03-22", bEnd: "2026-03-24",
			want: true,
		},
		{
			name:   "identical intervals",
			aStart: "2026-03-20", aEnd: "2026-03-22",
			bStart: "2026-03-20", bEnd: "2026-03-22",
			want: true,
		},
		{
			name:   "touching boundaries do not overlap",
			aStart: "2026-03-20", aEnd: "2026-03-22",
			bStart: "2026-03-22", bEnd: "2026-03-24",
			want: false,
		},
		{
			name:   "disjoint intervals",
			aStart: "2026-03-20", aEnd: "2026-03-22",
			bStart: "2026-03-25", bEnd: "2026-03-27",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.aStart), date(tt.aEnd), date(tt.bStart), date(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// Предикат симметричен относительно порядка интервалов
			mirrored := Overlaps(date(tt.bStart), date(tt.bEnd), date(tt.aStart), date(tt.aEnd))
			assert.Equal(t, got, mirrored)
		})
	}
}
