package featurevector

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// HistoryValue is a weight together with the time integral of its past values.
// Total holds the integral up to step Stamp; Value has been in effect since.
type HistoryValue struct {
	Stamp        int
	Value, Total float64
}

// Flush integrates the current value up to step
func (h *HistoryValue) Flush(step int) {
	h.Total += float64(step-h.Stamp) * h.Value
	h.Stamp = step
}

// Add flushes the value valid so far, then changes it by amount
func (h *HistoryValue) Add(step int, amount float64) {
	h.Flush(step)
	h.Value += amount
}

// IntegratedValue is the integral up to step without recording it
func (h *HistoryValue) IntegratedValue(step int) float64 {
	return h.Total + float64(step-h.Stamp)*h.Value
}

func NewHistoryValue(step int, value float64) *HistoryValue {
	return &HistoryValue{Stamp: step, Value: value}
}

// AvgSparse is a sparse feature x label weight table whose cells remember
// their history for averaging. Absent cells weigh 0.
// Not safe for concurrent mutation.
type AvgSparse struct {
	Vals map[Feature]map[string]*HistoryValue
}

func (v *AvgSparse) Value(feature Feature, label string) float64 {
	if labels, exists := v.Vals[feature]; exists {
		if hist, exists := labels[label]; exists {
			return hist.Value
		}
	}
	return 0.0
}

func (v *AvgSparse) Labels(feature Feature) (map[string]*HistoryValue, bool) {
	labels, exists := v.Vals[feature]
	return labels, exists
}

func (v *AvgSparse) Add(step int, feature Feature, label string, amount float64) {
	labels, exists := v.Vals[feature]
	if !exists {
		labels = make(map[string]*HistoryValue, 4)
		v.Vals[feature] = labels
	}
	if hist, exists := labels[label]; exists {
		hist.Add(step, amount)
	} else {
		// a fresh cell weighed 0 since step 0, contributing nothing to the total
		labels[label] = NewHistoryValue(step, amount)
	}
}

// SetScores adds count * weight of feature to the score of each label
func (v *AvgSparse) SetScores(feature Feature, count int, scores ScoreStore) {
	if labels, exists := v.Vals[feature]; exists {
		for label, hist := range labels {
			if hist.Value != 0 {
				scores.Inc(label, float64(count)*hist.Value)
			}
		}
	}
}

// Average replaces every weight with its mean over step steps, rounded to
// precision decimal places (negative precision disables rounding). Cells
// whose average is 0 are dropped and the history is reset.
func (v *AvgSparse) Average(step int, precision int) {
	if step == 0 {
		return
	}
	for feat, labels := range v.Vals {
		for label, hist := range labels {
			averaged := hist.IntegratedValue(step) / float64(step)
			if precision >= 0 {
				averaged = scalar.Round(averaged, precision)
			}
			if averaged == 0 {
				delete(labels, label)
				continue
			}
			labels[label] = NewHistoryValue(0, averaged)
		}
		if len(labels) == 0 {
			delete(v.Vals, feat)
		}
	}
}

// Len is the number of stored (feature, label) cells
func (v *AvgSparse) Len() int {
	var n int
	for _, labels := range v.Vals {
		n += len(labels)
	}
	return n
}

func (v *AvgSparse) String() string {
	feats := make([]string, 0, len(v.Vals))
	for feat := range v.Vals {
		feats = append(feats, string(feat))
	}
	sort.Strings(feats)
	strs := make([]string, 0, len(feats))
	for _, feat := range feats {
		labels := v.Vals[Feature(feat)]
		names := make([]string, 0, len(labels))
		for label := range labels {
			names = append(names, label)
		}
		sort.Strings(names)
		for _, label := range names {
			strs = append(strs, fmt.Sprintf("%v %v %v", feat, label, labels[label].Value))
		}
	}
	return strings.Join(strs, "\n")
}

// Serialize exports the current weights, dropping history
func (v *AvgSparse) Serialize() map[string]map[string]float64 {
	retval := make(map[string]map[string]float64, len(v.Vals))
	for feat, labels := range v.Vals {
		scores := make(map[string]float64, len(labels))
		for label, hist := range labels {
			scores[label] = hist.Value
		}
		retval[string(feat)] = scores
	}
	return retval
}

// Deserialize replaces the table; every loaded weight starts a fresh history
func (v *AvgSparse) Deserialize(data map[string]map[string]float64) {
	v.Vals = make(map[Feature]map[string]*HistoryValue, len(data))
	for feat, scores := range data {
		labels := make(map[string]*HistoryValue, len(scores))
		for label, value := range scores {
			labels[label] = NewHistoryValue(0, value)
		}
		v.Vals[Feature(feat)] = labels
	}
}

func NewAvgSparse() *AvgSparse {
	return &AvgSparse{Vals: make(map[Feature]map[string]*HistoryValue, 100)}
}
