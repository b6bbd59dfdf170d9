package perceptron

import (
	"testing"

	. "aptag/alg/featurevector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func features(keys ...string) FeatureSet {
	f := NewFeatureSet()
	for _, k := range keys {
		f.Inc(Feature(k))
	}
	return f
}

func TestPredictUntrained(t *testing.T) {
	m := NewAveragedPerceptron()
	assert.Equal(t, "", m.Predict(features("bias")))

	m.AddClass("VB")
	m.AddClass("NN")
	assert.Equal(t, "NN", m.Predict(features("bias")), "all-zero scores fall back to the smallest label")
}

func TestPredictScoresByCount(t *testing.T) {
	m := NewAveragedPerceptron()
	m.Weights.Deserialize(map[string]map[string]float64{
		"a": {"NN": 1.0, "VB": 1.5},
		"b": {"NN": 1.0},
	})
	m.AddClass("NN")
	m.AddClass("VB")

	f := features("a", "b")
	assert.Equal(t, "NN", m.Predict(f))

	f = features("a", "a", "b")
	assert.Equal(t, "VB", m.Predict(f), "feature counts scale weights")

	f = features("a", "b")
	f["b"] = 0
	assert.Equal(t, "VB", m.Predict(f), "zero-count features are ignored")
}

func TestPredictNegativeScores(t *testing.T) {
	m := NewAveragedPerceptron()
	m.Weights.Deserialize(map[string]map[string]float64{
		"a": {"NN": -1.0, "VB": -2.0},
	})
	m.AddClass("NN")
	m.AddClass("VB")
	m.AddClass("JJ")
	assert.Equal(t, "JJ", m.Predict(features("a")), "an unscored label at 0 beats negative scores")
}

func TestPredictDeterministicTies(t *testing.T) {
	m := NewAveragedPerceptron()
	m.Weights.Deserialize(map[string]map[string]float64{
		"a": {"NN": 0.25, "VB": 0.5, "DT": 0.75},
		"b": {"NN": 0.5, "VB": 0.25},
	})
	for _, label := range []string{"VB", "NN", "DT"} {
		m.AddClass(label)
	}
	f := features("a", "b")
	scores := m.Scores(f)
	require.Equal(t, scores.Get("DT"), scores.Get("NN"))
	require.Equal(t, scores.Get("DT"), scores.Get("VB"))
	first := m.Predict(f)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, m.Predict(f))
	}
	assert.Equal(t, "DT", first)
}

func TestUpdateNoOpOnCorrectGuess(t *testing.T) {
	m := NewAveragedPerceptron()
	m.Update("NN", "VB", features("a", "b"))
	before := m.Weights.Serialize()
	hist := *m.Weights.Vals["a"]["NN"]

	m.Update("NN", "NN", features("a", "b", "c"))
	assert.Equal(t, 1, m.I)
	assert.Equal(t, before, m.Weights.Serialize())
	assert.Equal(t, hist, *m.Weights.Vals["a"]["NN"])
}

func TestUpdate(t *testing.T) {
	m := NewAveragedPerceptron()
	f := features("a", "b", "b")
	m.Update("NN", "VB", f)
	assert.Equal(t, 1, m.I)
	assert.Equal(t, 1.0, m.Weights.Value("a", "NN"))
	assert.Equal(t, -1.0, m.Weights.Value("a", "VB"))
	assert.Equal(t, 2.0, m.Weights.Value("b", "NN"))
	assert.Equal(t, -2.0, m.Weights.Value("b", "VB"))
	assert.Equal(t, []string{"NN", "VB"}, m.Classes())
	assert.Equal(t, "NN", m.Predict(f))
}

type step struct {
	truth, guess string
	feats        []string
}

// Replays a sequence of updates and checks that every averaged weight is the
// mean of the values it held at the start of each step.
func TestAverageWeightsMatchesTrace(t *testing.T) {
	steps := []step{
		{"NN", "VB", []string{"a", "b"}},
		{"NN", "NN", []string{"a"}},
		{"VB", "NN", []string{"a"}},
		{"DT", "NN", []string{"b", "c", "c"}},
		{"NN", "DT", []string{"a", "c"}},
		{"VB", "VB", []string{"c"}},
		{"VB", "DT", []string{"b"}},
	}
	type cell struct{ feat, label string }
	cells := []cell{}
	for _, f := range []string{"a", "b", "c"} {
		for _, l := range []string{"NN", "VB", "DT"} {
			cells = append(cells, cell{f, l})
		}
	}

	m := NewAveragedPerceptron()
	m.Precision = -1
	trace := make(map[cell][]float64)
	for _, c := range cells {
		trace[c] = []float64{0}
	}
	for _, s := range steps {
		before := m.I
		m.Update(s.truth, s.guess, features(s.feats...))
		if m.I == before {
			continue
		}
		for _, c := range cells {
			trace[c] = append(trace[c], m.Weights.Value(Feature(c.feat), c.label))
		}
	}
	n := m.I
	require.Equal(t, 5, n)

	m.AverageWeights()
	for _, c := range cells {
		var sum float64
		for _, w := range trace[c][:n] {
			sum += w
		}
		assert.InDelta(t, sum/float64(n), m.Weights.Value(Feature(c.feat), c.label), 1e-9, "%v", c)
	}
	assert.Equal(t, 0, m.I)
}

func TestAverageWeightsUntrained(t *testing.T) {
	m := NewAveragedPerceptron()
	m.Weights.Deserialize(map[string]map[string]float64{"a": {"NN": 0.25}})
	m.AverageWeights()
	assert.Equal(t, 0.25, m.Weights.Value("a", "NN"))
}

func TestAverageWeightsRounds(t *testing.T) {
	m := NewAveragedPerceptron()
	m.Update("NN", "VB", features("a"))
	m.Update("VB", "NN", features("b"))
	m.Update("VB", "NN", features("b"))
	// a/NN held 1 for 2 of 3 steps
	m.AverageWeights()
	assert.Equal(t, 0.667, m.Weights.Value("a", "NN"))
	assert.Equal(t, -0.667, m.Weights.Value("a", "VB"))
	// b/VB held 1 for one of three steps
	assert.Equal(t, 0.333, m.Weights.Value("b", "VB"))
}

func TestSerializeRoundTrip(t *testing.T) {
	m := NewAveragedPerceptron()
	m.Update("NN", "VB", features("a"))
	m.Update("JJ", "NN", features("b"))
	m.AverageWeights()

	data := m.Serialize()
	assert.Equal(t, []string{"JJ", "NN", "VB"}, data.Classes)

	loaded := NewAveragedPerceptron()
	loaded.Deserialize(data)
	assert.Equal(t, m.Weights.Serialize(), loaded.Weights.Serialize())
	assert.Equal(t, m.Classes(), loaded.Classes())
	assert.Equal(t, 0, loaded.I)
	f := features("a", "b")
	assert.Equal(t, m.Predict(f), loaded.Predict(f))
}

func TestDefaultStopCondition(t *testing.T) {
	assert.True(t, DefaultStopCondition(0, 2, nil))
	assert.True(t, DefaultStopCondition(1, 2, nil))
	assert.False(t, DefaultStopCondition(2, 2, nil))
}

func TestPredictLeavesModelUntouched(t *testing.T) {
	m := NewAveragedPerceptron()
	m.AddClass("VB")
	m.AddClass("NN")
	classes := m.Classes()
	require.Equal(t, []string{"NN", "VB"}, classes)
	m.Update("NN", "VB", features("a"))
	before := m.Weights.String()

	m.Predict(features("a", "b"))
	assert.Equal(t, before, m.Weights.String())
	assert.Equal(t, []string{"NN", "VB"}, m.Classes())

	m.AddClass("DT")
	assert.Equal(t, []string{"DT", "NN", "VB"}, m.Classes())
	assert.Equal(t, []string{"NN", "VB"}, classes, "earlier label slices are not rewritten")
}
