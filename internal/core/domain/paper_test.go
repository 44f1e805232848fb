package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearRangeExpr(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want string
	}{
		{name: "both bounds", from: 2018, to: 2020, want: "2018-2020"},
		{name: "from only", from: 2020, to: 0, want: "2020-"},
		{name: "to only", from: 0, to: 2020, want: "-2020"},
		{name: "neither", from: 0, to: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearRangeExpr(tt.from, tt.to))
		})
	}
}

func TestPaperQuery_YearRange(t *testing.T) {
	q := PaperQuery{YearFrom: 2022}
	assert.Equal(t, "2022-", q.YearRange())
}
