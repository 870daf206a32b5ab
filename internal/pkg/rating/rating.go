// Package rating computes a professor's aggregate scores from the evaluations
// submitted for them. It holds no state and performs no I/O.
package rating

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Score bounds shared by every criterion score and every average.
const (
	MinScore = 0.0
	MaxScore = 5.0
)

// ErrScoreOutOfRange is returned when a criterion score lies outside [MinScore, MaxScore].
var ErrScoreOutOfRange = errors.New("score out of range")

// Scores holds one value per evaluation criterion. It is used both for the
// raw scores of a single evaluation and for the per-criterion averages.
type Scores struct {
	Experience    float64 `json:"experiencia"`
	Design        float64 `json:"diseno"`
	Communication float64 `json:"comunicacion"`
	Commitment    float64 `json:"compromiso"`
}

// Validate checks that every criterion lies in [MinScore, MaxScore].
func (s Scores) Validate() error {
	criteria := []struct {
		name  string
		value float64
	}{
		{"experiencia", s.Experience},
		{"diseno", s.Design},
		{"comunicacion", s.Communication},
		{"compromiso", s.Commitment},
	}
	for _, c := range criteria {
		if math.IsNaN(c.value) || c.value < MinScore || c.value > MaxScore {
			return fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, c.name, c.value)
		}
	}
	return nil
}

// Aggregate is the derived rating state stored on a professor.
type Aggregate struct {
	Averages Scores
	Overall  float64
	Count    int
}

// Next folds one more evaluation into the aggregate using the incremental
// running mean. Every criterion average is rounded to one decimal before the
// overall average is taken from the rounded values; stored ratings depend on
// that order, so it must not be collapsed into a single rounding.
func Next(current Aggregate, s Scores) Aggregate {
	oldCount := float64(current.Count)
	newCount := float64(current.Count + 1)

	running := func(oldAvg, score float64) float64 {
		return RoundTenths((oldAvg*oldCount + score) / newCount)
	}

	averages := Scores{
		Experience:    running(current.Averages.Experience, s.Experience),
		Design:        running(current.Averages.Design, s.Design),
		Communication: running(current.Averages.Communication, s.Communication),
		Commitment:    running(current.Averages.Commitment, s.Commitment),
	}

	return Aggregate{
		Averages: averages,
		Overall:  Overall(averages),
		Count:    current.Count + 1,
	}
}

// Overall returns the rounded mean of the four criterion values.
func Overall(s Scores) float64 {
	return RoundTenths((s.Experience + s.Design + s.Communication + s.Commitment) / 4)
}

// RoundTenths rounds x to the nearest tenth, working on the exact binary value
// of x. Exact ties round away from zero, so 1.25 becomes 1.3 while 1.15, which
// is stored as 1.1499999..., becomes 1.1.
func RoundTenths(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	negative := x < 0
	if negative {
		x = -x
	}

	scaled := new(big.Rat).SetFloat64(x)
	scaled.Mul(scaled, big.NewRat(10, 1))

	quotient, remainder := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if remainder.Lsh(remainder, 1).Cmp(scaled.Denom()) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}

	tenths, _ := new(big.Float).SetInt(quotient).Float64()
	rounded := tenths / 10
	if negative {
		return -rounded
	}
	return rounded
}
