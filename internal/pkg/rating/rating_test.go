package rating

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTenths(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"already tenth", 3.4, 3.4},
		{"exact tie rounds up", 1.25, 1.3},
		{"exact tie rounds up near top", 4.75, 4.8},
		{"binary value just above tie", 0.05, 0.1},
		{"binary value just below tie", 1.15, 1.1},
		{"binary value just below tie small", 0.35, 0.3},
		{"repeating fraction", 10.0 / 3.0, 3.3},
		{"two thirds", 2.0 / 3.0, 0.7},
		{"upper bound", 5, 5},
		{"negative tie rounds away from zero", -1.25, -1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundTenths(tt.in))
		})
	}
}

func TestRoundTenths_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(RoundTenths(math.NaN())))
	assert.True(t, math.IsInf(RoundTenths(math.Inf(1)), 1))
}

func TestScoresValidate(t *testing.T) {
	tests := []struct {
		name    string
		scores  Scores
		wantErr bool
	}{
		{"all zero", Scores{0, 0, 0, 0}, false},
		{"all five", Scores{5, 5, 5, 5}, false},
		{"fractional", Scores{4.5, 3.2, 0.1, 2}, false},
		{"negative experience", Scores{-1, 3, 3, 3}, true},
		{"design above max", Scores{3, 6, 3, 3}, true},
		{"communication just above max", Scores{3, 3, 5.0001, 3}, true},
		{"commitment negative", Scores{3, 3, 3, -0.1}, true},
		{"nan", Scores{3, math.NaN(), 3, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scores.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrScoreOutOfRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNext_FirstEvaluation(t *testing.T) {
	tests := []struct {
		name        string
		scores      Scores
		wantOverall float64
	}{
		{"integers", Scores{5, 4, 3, 2}, 3.5},
		{"overall exact tie", Scores{4, 4, 4, 3}, 3.8},
		{"overall quarter tie", Scores{1, 1, 1, 2}, 1.3},
		{"all zero", Scores{0, 0, 0, 0}, 0},
		{"fractional scores", Scores{4.25, 3.5, 2.75, 1}, 2.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(Aggregate{}, tt.scores)

			assert.Equal(t, 1, got.Count)
			assert.Equal(t, RoundTenths(tt.scores.Experience), got.Averages.Experience)
			assert.Equal(t, RoundTenths(tt.scores.Design), got.Averages.Design)
			assert.Equal(t, RoundTenths(tt.scores.Communication), got.Averages.Communication)
			assert.Equal(t, RoundTenths(tt.scores.Commitment), got.Averages.Commitment)
			assert.Equal(t, tt.wantOverall, got.Overall)
		})
	}
}

func TestNext_IntermediateRoundingDiffersFromPlainMean(t *testing.T) {
	// 1, 0, 0, 0: the running mean is rounded to 0.3 after three evaluations,
	// so the fourth step yields 0.2 while the plain mean of 0.25 would give 0.3.
	sequence := []Scores{
		{1, 5, 5, 5},
		{0, 5, 5, 5},
		{0, 5, 5, 5},
		{0, 5, 5, 5},
	}

	var agg Aggregate
	for _, s := range sequence {
		agg = Next(agg, s)
	}

	assert.Equal(t, 4, agg.Count)
	assert.Equal(t, 0.2, agg.Averages.Experience)
	assert.Equal(t, 5.0, agg.Averages.Design)
	assert.Equal(t, 3.8, agg.Overall)
	assert.NotEqual(t, RoundTenths(0.25), agg.Averages.Experience)
}

func TestNext_MatchesResimulation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		n := 1 + rng.Intn(40)
		history := make([]Scores, n)
		for i := range history {
			history[i] = Scores{
				Experience:    randomScore(rng),
				Design:        randomScore(rng),
				Communication: randomScore(rng),
				Commitment:    randomScore(rng),
			}
		}

		var agg Aggregate
		for _, s := range history {
			agg = Next(agg, s)
		}

		want := resimulate(history)
		require.Equal(t, n, agg.Count)
		require.Equal(t, want, agg.Averages, "run %d", run)
		require.Equal(t, Overall(want), agg.Overall, "run %d", run)
		assertBounded(t, agg)
	}
}

func TestNext_DoesNotMutateInput(t *testing.T) {
	current := Aggregate{Averages: Scores{3, 3, 3, 3}, Overall: 3, Count: 2}
	snapshot := current

	_ = Next(current, Scores{5, 5, 5, 5})

	assert.Equal(t, snapshot, current)
}

func TestOverall(t *testing.T) {
	assert.Equal(t, 2.5, Overall(Scores{1, 2, 3, 4}))
	assert.Equal(t, 0.1, Overall(Scores{0.1, 0.1, 0.1, 0.1}))
	assert.Equal(t, 4.9, Overall(Scores{4.9, 4.9, 4.9, 4.9}))
}

// resimulate recomputes the averages criterion by criterion, in submission order.
func resimulate(history []Scores) Scores {
	column := func(pick func(Scores) float64) float64 {
		avg := 0.0
		for i, s := range history {
			avg = RoundTenths((avg*float64(i) + pick(s)) / float64(i+1))
		}
		return avg
	}

	return Scores{
		Experience:    column(func(s Scores) float64 { return s.Experience }),
		Design:        column(func(s Scores) float64 { return s.Design }),
		Communication: column(func(s Scores) float64 { return s.Communication }),
		Commitment:    column(func(s Scores) float64 { return s.Commitment }),
	}
}

func randomScore(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return float64(rng.Intn(6))
	}
	return float64(rng.Intn(51)) / 10
}

func assertBounded(t *testing.T, agg Aggregate) {
	t.Helper()
	for _, v := range []float64{
		agg.Averages.Experience,
		agg.Averages.Design,
		agg.Averages.Communication,
		agg.Averages.Commitment,
		agg.Overall,
	} {
		assert.GreaterOrEqual(t, v, MinScore)
		assert.LessOrEqual(t, v, MaxScore)
	}
}
