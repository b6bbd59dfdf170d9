package hmm

import (
	"math"
	"testing"

	"aptag/alg/viterbi"
	"aptag/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus() types.Corpus {
	return types.Corpus{
		types.Zip([]string{"The", "dog", "runs"}, []string{"DT", "NN", "VBZ"}),
		types.Zip([]string{"the", "cat", "sleeps"}, []string{"DT", "NN", "VBZ"}),
		types.Zip([]string{"a", "dog", "sleeps"}, []string{"DT", "NN", "VBZ"}),
	}
}

func sumExp(values ...float64) float64 {
	var sum float64
	for _, v := range values {
		sum += math.Exp(v)
	}
	return sum
}

func TestEstimateDistributions(t *testing.T) {
	h := Estimate(corpus(), DEFAULT_SMOOTHING)
	require.Equal(t, []string{"DT", "NN", "VBZ"}, h.States())

	var starts []float64
	for _, s := range h.States() {
		starts = append(starts, h.StartProbability(s))
	}
	assert.InDelta(t, 1.0, sumExp(starts...), 1e-9)

	for _, from := range h.States() {
		var row []float64
		for _, to := range h.States() {
			row = append(row, h.TransitionProbability(from, to))
		}
		assert.InDelta(t, 1.0, sumExp(row...), 1e-9, from)
	}

	for _, s := range h.States() {
		emissions := []float64{h.EmissionProbability("never-seen-word", s)}
		for _, w := range []string{"the", "a", "dog", "cat", "runs", "sleeps"} {
			emissions = append(emissions, h.EmissionProbability(w, s))
		}
		assert.InDelta(t, 1.0, sumExp(emissions...), 1e-9, s)
	}
	assert.Equal(t, h.EmissionProbability("the", "DT"), h.EmissionProbability("THE", "DT"))
	assert.True(t, h.Known("Dog"))
	assert.False(t, h.Known("zebra"))
	assert.True(t, math.IsInf(h.StartProbability("XX"), -1))
	assert.True(t, math.IsInf(h.TransitionProbability("DT", "XX"), -1))
}

func TestStatesOf(t *testing.T) {
	h := Estimate(corpus(), DEFAULT_SMOOTHING)
	prob, tags := h.StatesOf([]string{"the", "cat", "runs"})
	assert.Equal(t, []string{"DT", "NN", "VBZ"}, tags)
	assert.False(t, math.IsInf(prob, -1))

	_, tags = h.StatesOf([]string{"the", "zebra", "runs"})
	assert.Equal(t, []string{"DT", "NN", "VBZ"}, tags)

	tagged := h.Tag(types.NewBasicSentence([]string{"A", "cat"}))
	assert.Equal(t, []string{"DT", "NN"}, tagged.Tags())

	assert.Empty(t, h.Tag(types.NewBasicSentence(nil)))
}

func TestUnsmoothedImpossible(t *testing.T) {
	h := Estimate(corpus(), 0)
	assert.True(t, math.IsInf(h.StartProbability("NN"), -1))
	assert.True(t, math.IsInf(h.EmissionProbability("zebra", "NN"), -1))

	prob, tags := h.StatesOf([]string{"dog", "the"})
	assert.True(t, math.IsInf(prob, -1))
	assert.Equal(t, []string{viterbi.NoState, viterbi.NoState}, tags)

	prob, tags = h.StatesOf([]string{"the", "dog", "zebra"})
	assert.True(t, math.IsInf(prob, -1))
	assert.Equal(t, []string{"DT", "NN", viterbi.NoState}, tags)

	prob, tags = h.StatesOf([]string{"the", "dog", "runs"})
	assert.InDelta(t, 2*math.Log(2.0/3.0)+math.Log(1.0/3.0), prob, 1e-9)
	assert.Equal(t, []string{"DT", "NN", "VBZ"}, tags)
}
