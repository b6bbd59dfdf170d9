package perceptron

import (
	. "aptag/alg/featurevector"
)

// Model is a multiclass linear model over sparse features
type Model interface {
	Predict(features FeatureSet) string
	Update(truth, guess string, features FeatureSet)
	AverageWeights()
	AddClass(label string)
	Classes() []string
}

// StopCondition decides whether training starts iteration curIt of numIt
type StopCondition func(curIt, numIt int, model Model) bool

func DefaultStopCondition(iteration, iterations int, model Model) bool {
	return iteration < iterations
}

// Serialized is the persisted form of an averaged model. History is never
// persisted: a saved model is assumed to be averaged already.
type Serialized struct {
	Weights map[string]map[string]float64 `json:"weights"`
	Classes []string                      `json:"classes"`
}
