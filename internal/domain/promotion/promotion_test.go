package promotion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestSecondHalfPrice_Apply(t *testing.T) {
	tests := []struct {
		name     string
		price    decimal.Decimal
		quantity int
		want     decimal.Decimal
	}{
		{name: "single unit full price", price: d("100"), quantity: 1, want: d("100")},
		{name: "one pair", price: d("100"), quantity: 2, want: d("150")},
		{name: "odd leftover unit full price", price: d("100"), quantity: 3, want: d("250")},
		{name: "two pairs", price: d("100"), quantity: 4, want: d("300")},
		{name: "two pairs at 1450", price: d("1450"), quantity: 4, want: d("4350")},
		{name: "odd unit price halves cleanly", price: d("5"), quantity: 2, want: d("7.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSecondHalfPrice("Second Half price!")

			got := p.Apply(tt.price, tt.quantity)

			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestNthFree_Apply(t *testing.T) {
	tests := []struct {
		name     string
		price    decimal.Decimal
		quantity int
		want     decimal.Decimal
	}{
		{name: "below group size pays full", price: d("90"), quantity: 2, want: d("180")},
		{name: "one complete group", price: d("90"), quantity: 3, want: d("180")},
		{name: "remainder billed at full price", price: d("90"), quantity: 4, want: d("270")},
		{name: "two complete groups", price: d("90"), quantity: 6, want: d("360")},
		{name: "two groups plus one", price: d("90"), quantity: 7, want: d("450")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewThirdOneFree("Third One Free!")

			got := p.Apply(tt.price, tt.quantity)

			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestNewNthFree(t *testing.T) {
	p, err := NewNthFree("Every 5th free", 5)
	require.NoError(t, err)

	got := p.Apply(d("10"), 5)
	assert.True(t, d("40").Equal(got), "expected 40, got %s", got)

	_, err = NewNthFree("bogus", 1)
	require.Error(t, err)
}

func TestPercentOff_Apply(t *testing.T) {
	tests := []struct {
		name     string
		percent  decimal.Decimal
		price    decimal.Decimal
		quantity int
		want     decimal.Decimal
	}{
		{name: "30 percent off one unit", percent: d("30"), price: d("100"), quantity: 1, want: d("70")},
		{name: "30 percent off ten units", percent: d("30"), price: d("100"), quantity: 10, want: d("700")},
		{name: "zero percent is identity", percent: d("0"), price: d("250"), quantity: 2, want: d("500")},
		{name: "over 100 percent goes negative", percent: d("150"), price: d("100"), quantity: 1, want: d("-50")},
		{name: "negative percent is a surcharge", percent: d("-10"), price: d("100"), quantity: 1, want: d("110")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPercentOff("percent off", tt.percent)

			got := p.Apply(tt.price, tt.quantity)

			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestPercentOff_SetPercent(t *testing.T) {
	p := NewPercentOff("30% off!", d("30"))
	require.True(t, d("30").Equal(p.Percent()))

	p.SetPercent(d("50"))

	assert.True(t, d("50").Equal(p.Percent()))
	got := p.Apply(d("100"), 2)
	assert.True(t, d("100").Equal(got), "expected 100, got %s", got)
}

func TestApply_PureAndRepeatable(t *testing.T) {
	promos := []Promotion{
		NewSecondHalfPrice("half"),
		NewThirdOneFree("third"),
		NewPercentOff("pct", d("25")),
	}

	for _, p := range promos {
		first := p.Apply(d("99.99"), 7)
		second := p.Apply(d("99.99"), 7)
		assert.True(t, first.Equal(second), "%s: %s != %s", p.Name(), first, second)
	}
}

func TestApply_LargeQuantities(t *testing.T) {
	const quantity = 900_000_000

	got := NewThirdOneFree("third").Apply(d("90"), quantity)
	want := d("90").Mul(decimal.NewFromInt(2 * quantity / 3))
	assert.True(t, want.Equal(got), "expected %s, got %s", want, got)

	got = NewSecondHalfPrice("half").Apply(d("100"), quantity)
	want = d("75").Mul(decimal.NewFromInt(quantity))
	assert.True(t, want.Equal(got), "expected %s, got %s", want, got)
}
