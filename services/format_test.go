package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrouped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2640, "2,640"},
		{17600, "17,600"},
		{330000, "330,000"},
		{1234567.6, "1,234,568"},
		{-45210, "-45,210"},
		{math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, grouped(tt.in), "grouped(%v)", tt.in)
	}
}

func TestPercentAndFixed(t *testing.T) {
	assert.Equal(t, "98.3%", percent(0.983, 1))
	assert.Equal(t, "96.5%", percent(0.965, 1))
	assert.Equal(t, "97.4%", percent((0.983+0.965)/2, 1))
	assert.Equal(t, "0.983", fixed(0.983, 3))
	assert.Equal(t, "39", fixed(39.05, 0))
	assert.Equal(t, "24", fixed(24.204, 0))
}

func TestPlain(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{400, "400.0"},
		{3, "3.0"},
		{3.25, "3.25"},
		{0, "0.0"},
		{math.Inf(1), "inf"},
		{1e16, "1e+16"},
		{9999999999999998, "9999999999999998.0"},
		{0.0001, "0.0001"},
		{0.000015, "1.5e-05"},
		{-2.5e20, "-2.5e+20"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, plain(tt.in), "plain(%v)", tt.in)
	}
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Rural Agricultural", titleWords("rural_agricultural"))
	assert.Equal(t, "Industrial Zone", titleWords("industrial_zone"))
	assert.Equal(t, "rural agricultural", spaced("rural_agricultural"))
	assert.Equal(t, "", titleWords(""))
}
