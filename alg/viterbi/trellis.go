// Package viterbi finds the most likely state sequence of an observation
// sequence under a model of additive log-probabilities.
package viterbi

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// NoState marks a position that no viable path reaches
const NoState = ""

// Model exposes log-probabilities; impossible events are math.Inf(-1)
type Model interface {
	States() []string
	StartProbability(state string) float64
	TransitionProbability(from, to string) float64
	EmissionProbability(event, state string) float64
}

// cell is one column of the trellis: the best log probability of the prefix
// ending in each state, and the state before it on that best path
type cell struct {
	delta []float64
	psi   []int
	prior *cell
	// best is the index of the first maximal delta, -1 if all are -Inf
	best int
}

func (c *cell) viable() bool {
	return c.best >= 0
}

// Trellis memoizes a column for every prefix it has seen, keyed by the exact
// prefix. A trellis serves one model and is not safe for concurrent use.
type Trellis struct {
	model  Model
	states []string
	memo   map[string]*cell
}

func NewTrellis(model Model) *Trellis {
	return &Trellis{
		model:  model,
		states: model.States(),
		memo:   make(map[string]*cell),
	}
}

// argmax returns the first maximal index, or -1 if every value is -Inf
func argmax(values []float64) int {
	if len(values) == 0 {
		return -1
	}
	i := floats.MaxIdx(values)
	if math.IsInf(values[i], -1) || math.IsNaN(values[i]) {
		return -1
	}
	return i
}

// ProbAndBacktrace returns the log probability of the most likely state
// sequence for events together with that sequence. Among equally likely
// sequences the one whose last state comes first in States() order wins,
// then the one whose second-to-last state does, and so on.
//
// If no sequence is possible the result is -Inf; the backtrace then holds
// the best path of the longest viable prefix followed by NoState.
func (t *Trellis) ProbAndBacktrace(events []string) (float64, []string) {
	if len(events) == 0 {
		return math.Inf(-1), nil
	}
	last := t.column(events)

	columns := make([]*cell, len(events))
	for i, c := len(events)-1, last; i >= 0; i, c = i-1, c.prior {
		columns[i] = c
	}
	bt := make([]string, len(events))
	for i := range bt {
		bt[i] = NoState
	}
	// walk back from the last column that still has a viable path
	end := len(columns) - 1
	for end >= 0 && !columns[end].viable() {
		end--
	}
	if end < 0 {
		return math.Inf(-1), bt
	}
	state := columns[end].best
	for i := end; i >= 0; i-- {
		bt[i] = t.states[state]
		state = columns[i].psi[state]
	}
	if end < len(columns)-1 {
		return math.Inf(-1), bt
	}
	return last.delta[last.best], bt
}

func (t *Trellis) column(events []string) *cell {
	key := prefixKey(events)
	if c, exists := t.memo[key]; exists {
		return c
	}
	n := len(t.states)
	c := &cell{
		delta: make([]float64, n),
		psi:   make([]int, n),
	}
	event := events[len(events)-1]
	if len(events) == 1 {
		for j, st := range t.states {
			c.delta[j] = t.model.StartProbability(st) + t.model.EmissionProbability(event, st)
			c.psi[j] = -1
		}
	} else {
		c.prior = t.column(events[:len(events)-1])
		if !c.prior.viable() {
			// an impossible prefix cannot be extended to a viable one
			for j := range c.delta {
				c.delta[j] = math.Inf(-1)
				c.psi[j] = -1
			}
		} else {
			scores := make([]float64, n)
			for j, st := range t.states {
				for k, prev := range t.states {
					scores[k] = c.prior.delta[k] + t.model.TransitionProbability(prev, st)
				}
				k := argmax(scores)
				c.psi[j] = k
				if k < 0 {
					c.delta[j] = math.Inf(-1)
					continue
				}
				c.delta[j] = scores[k] + t.model.EmissionProbability(event, st)
			}
		}
	}
	c.best = argmax(c.delta)
	t.memo[key] = c
	return c
}

// prefixKey identifies a prefix by its exact contents
func prefixKey(events []string) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(strconv.Itoa(len(e)))
		b.WriteByte(':')
		b.WriteString(e)
	}
	return b.String()
}

// Len is the number of memoized prefixes
func (t *Trellis) Len() int {
	return len(t.memo)
}
