package datafile

import (
	"iter"
	"math"
	"strconv"

	"datagen.arpa/tools/random"
)

const (
	MinValue = -1000
	MaxValue = 1000

	// Decimal places kept for float values
	FloatPrecision = 3
)

// Value is a single generated number.
type Value struct {
	Kind  Kind
	Int   int
	Float float64
}

// String renders the value as it appears in the output file.
func (v Value) String() string {
	if v.Kind == KindFloat {
		return strconv.FormatFloat(v.Float, 'f', FloatPrecision, 64)
	}
	return strconv.Itoa(v.Int)
}

// Generate lazily yields count values of the requested kind in generation order.
func Generate(src *random.Source, kind Kind, count uint64) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for range count {
			var v Value
			switch kind {
			case KindFloat:
				v = Value{Kind: KindFloat, Float: Round(src.Float(MinValue, MaxValue), FloatPrecision)}
			default:
				v = Value{Kind: KindInteger, Int: src.Int(MinValue, MaxValue)}
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Round rounds f half away from zero to the given number of decimal places.
// Negative zero is normalized to zero.
func Round(f float64, places int) float64 {
	pow := math.Pow10(places)
	r := math.Round(f*pow) / pow
	if r == 0 {
		return 0
	}
	return r
}
