// Package hmm estimates a first order hidden Markov model over tags from a
// tagged corpus and decodes sentences with the viterbi trellis.
package hmm

import (
	"math"
	"sort"

	"aptag/alg/viterbi"
	"aptag/nlp/tagger"
	"aptag/nlp/types"

	"gonum.org/v1/gonum/floats"
)

const DEFAULT_SMOOTHING = 0.1

// HMM holds log-probabilities over normalized words. With smoothing k > 0
// every count is incremented by k; with k == 0 unseen events are impossible.
type HMM struct {
	Tags      []string
	Smoothing float64

	index      map[string]int
	start      []float64
	transition [][]float64
	emission   map[string][]float64
	// unknown is the emission of a word never seen in training
	unknown []float64
}

var _ viterbi.Model = &HMM{}

func (h *HMM) States() []string {
	return h.Tags
}

func (h *HMM) StartProbability(state string) float64 {
	if i, exists := h.index[state]; exists {
		return h.start[i]
	}
	return math.Inf(-1)
}

func (h *HMM) TransitionProbability(from, to string) float64 {
	i, exists := h.index[from]
	if !exists {
		return math.Inf(-1)
	}
	j, exists := h.index[to]
	if !exists {
		return math.Inf(-1)
	}
	return h.transition[i][j]
}

func (h *HMM) EmissionProbability(event, state string) float64 {
	i, exists := h.index[state]
	if !exists {
		return math.Inf(-1)
	}
	if probs, known := h.emission[tagger.Normalize(event)]; known {
		return probs[i]
	}
	return h.unknown[i]
}

// Known reports whether word was seen in training
func (h *HMM) Known(word string) bool {
	_, known := h.emission[tagger.Normalize(word)]
	return known
}

// Estimate counts start, transition and emission events in corpus and turns
// them into smoothed log-probabilities
func Estimate(corpus types.Corpus, smoothing float64) *HMM {
	h := &HMM{
		Smoothing: smoothing,
		index:     make(map[string]int),
		emission:  make(map[string][]float64),
	}
	for _, sent := range corpus {
		for _, token := range sent {
			if _, exists := h.index[token.POS]; !exists {
				h.index[token.POS] = 0
				h.Tags = append(h.Tags, token.POS)
			}
		}
	}
	sort.Strings(h.Tags)
	for i, tag := range h.Tags {
		h.index[tag] = i
	}
	n := len(h.Tags)

	h.start = make([]float64, n)
	h.transition = make([][]float64, n)
	for i := range h.transition {
		h.transition[i] = make([]float64, n)
	}
	tagCounts := make([]float64, n)
	for _, sent := range corpus {
		prev := -1
		for _, token := range sent {
			i := h.index[token.POS]
			if prev < 0 {
				h.start[i]++
			} else {
				h.transition[prev][i]++
			}
			word := tagger.Normalize(token.Token)
			counts, exists := h.emission[word]
			if !exists {
				counts = make([]float64, n)
				h.emission[word] = counts
			}
			counts[i]++
			tagCounts[i]++
			prev = i
		}
	}

	logNormalize(h.start, smoothing)
	for _, row := range h.transition {
		logNormalize(row, smoothing)
	}
	// every tag's emission distribution covers the vocabulary plus one
	// unknown word
	vocab := float64(len(h.emission) + 1)
	h.unknown = make([]float64, n)
	for i := range h.unknown {
		h.unknown[i] = logRatio(smoothing, tagCounts[i]+smoothing*vocab)
	}
	for _, counts := range h.emission {
		for i := range counts {
			counts[i] = logRatio(counts[i]+smoothing, tagCounts[i]+smoothing*vocab)
		}
	}
	return h
}

// logNormalize turns counts into smoothed log-probabilities in place
func logNormalize(counts []float64, smoothing float64) {
	floats.AddConst(smoothing, counts)
	total := floats.Sum(counts)
	for i, c := range counts {
		counts[i] = logRatio(c, total)
	}
}

func logRatio(num, denom float64) float64 {
	if num == 0 || denom == 0 {
		return math.Inf(-1)
	}
	return math.Log(num / denom)
}

// StatesOf decodes the most likely tag sequence of words
func (h *HMM) StatesOf(words []string) (float64, []string) {
	return viterbi.NewTrellis(h).ProbAndBacktrace(words)
}

func (h *HMM) Tag(sent types.Sentence) types.BasicTaggedSentence {
	words := sent.Tokens()
	_, tags := h.StatesOf(words)
	if tags == nil {
		tags = []string{}
	}
	return types.Zip(words, tags)
}
