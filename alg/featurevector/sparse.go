package featurevector

import (
	"fmt"
	"sort"
	"strings"
)

// FeatureSet maps each feature fired for a single token to the number of
// times it fired
type FeatureSet map[Feature]int

func NewFeatureSet() FeatureSet {
	return make(FeatureSet, 16)
}

// Add joins name and args with spaces and increments the resulting feature
func (v FeatureSet) Add(name string, args ...string) {
	if len(args) == 0 {
		v.Inc(Feature(name))
		return
	}
	v.Inc(Feature(name + " " + strings.Join(args, " ")))
}

func (v FeatureSet) Inc(feature Feature) {
	v[feature]++
}

func (v FeatureSet) Copy() FeatureSet {
	copied := make(FeatureSet, len(v))
	for k, val := range v {
		copied[k] = val
	}
	return copied
}

// Keys returns the features in lexicographic order
func (v FeatureSet) Keys() []Feature {
	keys := make([]Feature, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// L1Norm is the total number of template firings
func (v FeatureSet) L1Norm() int {
	var result int
	for _, val := range v {
		result += val
	}
	return result
}

func (v FeatureSet) String() string {
	keys := v.Keys()
	strs := make([]string, len(keys))
	for i, feat := range keys {
		strs[i] = fmt.Sprintf("%v %v", feat, v[feat])
	}
	return strings.Join(strs, "\n")
}
