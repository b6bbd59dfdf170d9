package featurevector

// Feature is an instantiated feature template, e.g. "i suffix ing"
type Feature string

// ScoreStore accumulates per-label scores during prediction
type ScoreStore map[string]float64

func (s ScoreStore) Inc(label string, score float64) {
	s[label] += score
}

func (s ScoreStore) Get(label string) float64 {
	return s[label]
}
