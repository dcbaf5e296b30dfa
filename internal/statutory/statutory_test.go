package statutory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestSSSSalaryCredit(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		want   string
	}{
		{"below floor snaps to minimum", "3000", "4000"},
		{"exact credit", "10000", "10000"},
		{"rounds up past midpoint", "10250", "10500"},
		{"rounds down below midpoint", "10249", "10000"},
		{"above ceiling caps", "45000", "30000"},
		{"zero salary", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SSSSalaryCredit(d(tt.salary))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSSSEmployeeContribution(t *testing.T) {
	// 22,000 maps to the 22,000 credit; 4.5% of it is 990.
	got := SSSEmployeeContribution(d("22000"))
	assert.True(t, d("990").Equal(got), "got %s", got)
}

func TestPhilHealthPremium(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		want   string
	}{
		{"below floor uses floor", "8000", "500"},
		{"mid range", "22000", "1100"},
		{"above ceiling uses ceiling", "150000", "5000"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhilHealthPremium(d(tt.salary))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestPhilHealthEmployeeContribution(t *testing.T) {
	got := PhilHealthEmployeeContribution(d("22000"))
	assert.True(t, d("550").Equal(got), "got %s", got)
}

func TestPagIbigEmployeeContribution(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		want   string
	}{
		{"low rate at or below 1500", "1500", "15"},
		{"high rate above 1500", "3000", "60"},
		{"cap at 5000 fund salary", "22000", "100"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PagIbigEmployeeContribution(d(tt.salary))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestMonthlyWithholdingTax(t *testing.T) {
	tests := []struct {
		name    string
		taxable string
		want    string
	}{
		{"exempt band", "20000", "0"},
		{"second bracket", "25000", "625.05"},
		{"third bracket", "40000", "3208.40"},
		{"zero income", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyWithholdingTax(d(tt.taxable))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSemiMonthlyWithholdingTax(t *testing.T) {
	// 12,500 semi-monthly doubles to 25,000 monthly: (25000-20833)*0.15 = 625.05,
	// halved back to 312.53 after rounding.
	got := SemiMonthlyWithholdingTax(d("12500"))
	assert.True(t, d("312.53").Equal(got), "got %s", got)
}

func TestSuggest(t *testing.T) {
	s := Suggest(d("22000"))

	assert.True(t, d("990").Equal(s.SSS))
	assert.True(t, d("550").Equal(s.PhilHealth))
	assert.True(t, d("100").Equal(s.PagIbig))
	// Taxable after contributions: 22000 - 990 - 550 - 100 = 20360, inside
	// the exempt band.
	assert.True(t, s.EstimatedTax.IsZero())
}
