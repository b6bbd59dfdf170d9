package perceptron

import (
	. "aptag/alg/featurevector"
	"aptag/util"

	log "github.com/golang/glog"
)

const DEFAULT_PRECISION = 3

// AveragedPerceptron scores each label by the dot product of the token's
// features with per-feature per-label weights. Training keeps the time
// integral of every weight so AverageWeights can replace each weight by its
// mean over all training steps.
type AveragedPerceptron struct {
	Weights *AvgSparse
	// I counts the updates that changed weights
	I int
	// Precision is the number of decimal places averaged weights keep
	Precision int
	Log       bool

	classes *util.EnumSet
	sorted  []string
}

var _ Model = &AveragedPerceptron{}

func (m *AveragedPerceptron) AddClass(label string) {
	if _, added := m.classes.Add(label); added {
		m.sorted = m.classes.Sorted()
	}
}

// Classes returns the known labels in lexicographic order. The slice is
// shared and must not be modified.
func (m *AveragedPerceptron) Classes() []string {
	return m.sorted
}

// Scores returns the score of every label that received a contribution
func (m *AveragedPerceptron) Scores(features FeatureSet) ScoreStore {
	scores := make(ScoreStore, m.classes.Len())
	// fixed summation order keeps float scores reproducible
	for _, feat := range features.Keys() {
		count := features[feat]
		if count == 0 {
			continue
		}
		m.Weights.SetScores(feat, count, scores)
	}
	return scores
}

// Predict returns the highest scoring known label. Labels without any
// contribution score 0; ties go to the lexicographically smallest label.
// An untrained model with no labels returns "".
func (m *AveragedPerceptron) Predict(features FeatureSet) string {
	var (
		best      string
		bestScore float64
		found     bool
	)
	scores := m.Scores(features)
	for _, label := range m.Classes() {
		score := scores.Get(label)
		if !found || score > bestScore {
			best, bestScore, found = label, score, true
		}
	}
	return best
}

// Update applies the perceptron rule when guess differs from truth: +count
// for every feature under truth and -count under guess, after flushing the
// history of each changed weight at the new step.
func (m *AveragedPerceptron) Update(truth, guess string, features FeatureSet) {
	if truth == guess {
		return
	}
	m.AddClass(truth)
	m.AddClass(guess)
	m.I++
	for feat, count := range features {
		if count == 0 {
			continue
		}
		m.Weights.Add(m.I, feat, truth, float64(count))
		m.Weights.Add(m.I, feat, guess, -float64(count))
	}
	if m.Log {
		log.V(2).Infof("Update %d: %s -> %s over %d features", m.I, guess, truth, len(features))
	}
}

// AverageWeights finalizes training. An untrained model (I == 0) is left
// unchanged. The step counter restarts so a second call is a no-op.
func (m *AveragedPerceptron) AverageWeights() {
	if m.I == 0 {
		return
	}
	if m.Log {
		log.Infof("Averaging %d weights over %d updates", m.Weights.Len(), m.I)
	}
	m.Weights.Average(m.I, m.Precision)
	m.I = 0
}

func (m *AveragedPerceptron) Serialize() *Serialized {
	return &Serialized{
		Weights: m.Weights.Serialize(),
		Classes: m.Classes(),
	}
}

func (m *AveragedPerceptron) Deserialize(data *Serialized) {
	m.Weights.Deserialize(data.Weights)
	m.classes = util.NewEnumSet(len(data.Classes))
	m.sorted = []string{}
	m.I = 0
	for _, label := range data.Classes {
		m.AddClass(label)
	}
	// labels only seen inside the weight table are still labels
	for _, labels := range data.Weights {
		for label := range labels {
			m.AddClass(label)
		}
	}
}

func NewAveragedPerceptron() *AveragedPerceptron {
	return &AveragedPerceptron{
		Weights:   NewAvgSparse(),
		Precision: DEFAULT_PRECISION,
		classes:   util.NewEnumSet(50),
		sorted:    []string{},
	}
}
