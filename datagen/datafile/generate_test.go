package datafile

import (
	"regexp"
	"strconv"
	"testing"

	"datagen.arpa/tools/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var floatText = regexp.MustCompile(`^-?\d+\.\d{3}$`)

func TestGenerateIntegers(t *testing.T) {
	var n int
	for v := range Generate(random.New(42), KindInteger, 1000) {
		n++
		require.Equal(t, KindInteger, v.Kind)
		if v.Int < MinValue || v.Int > MaxValue {
			t.Fatalf("integer %d out of range [%d, %d]", v.Int, MinValue, MaxValue)
		}
		_, err := strconv.Atoi(v.String())
		require.NoError(t, err)
	}
	assert.Equal(t, 1000, n)
}

func TestGenerateFloats(t *testing.T) {
	var n int
	for v := range Generate(random.New(42), KindFloat, 1000) {
		n++
		require.Equal(t, KindFloat, v.Kind)
		if v.Float < MinValue || v.Float > MaxValue {
			t.Fatalf("float %f out of range [%d, %d]", v.Float, MinValue, MaxValue)
		}
		if !floatText.MatchString(v.String()) {
			t.Fatalf("float text %q does not have exactly 3 decimals", v.String())
		}
	}
	assert.Equal(t, 1000, n)
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	var a, b []string
	for v := range Generate(random.New(99), KindFloat, 20) {
		a = append(a, v.String())
	}
	for v := range Generate(random.New(99), KindFloat, 20) {
		b = append(b, v.String())
	}
	assert.Equal(t, a, b)
}

func TestGenerateStopsEarly(t *testing.T) {
	var n int
	for range Generate(random.New(1), KindInteger, 100) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.23449, 1.234},
		{1.2346, 1.235},
		{-1.2346, -1.235},
		{999.9996, 1000},
		{-0.0004, 0},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in, FloatPrecision), "Round(%v)", tt.in)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Value{Kind: KindInteger, Int: -1000}, "-1000"},
		{Value{Kind: KindInteger, Int: 42}, "42"},
		{Value{Kind: KindFloat, Float: -45.123}, "-45.123"},
		{Value{Kind: KindFloat, Float: 0}, "0.000"},
		{Value{Kind: KindFloat, Float: Round(-0.0001, FloatPrecision)}, "0.000"},
		{Value{Kind: KindFloat, Float: 7.5}, "7.500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func BenchmarkGenerateFloats(b *testing.B) {
	src := random.New(1)
	for b.Loop() {
		for range Generate(src, KindFloat, 100) {
		}
	}
}
