package tagger

import (
	"aptag/nlp/types"
)

const (
	DEFAULT_FREQ_THRESHOLD      = 20
	DEFAULT_AMBIGUITY_THRESHOLD = 0.97
)

// TagDictionary maps frequent, nearly unambiguous words straight to their tag
type TagDictionary struct {
	Tags map[string]string
}

// NewTagDictionary keeps every word seen at least freqThresh times whose most
// frequent tag accounts for at least ambiguityThresh of its occurrences.
// Both bounds are inclusive. Among equally frequent tags the smallest wins.
func NewTagDictionary(corpus types.Corpus, freqThresh int, ambiguityThresh float64) *TagDictionary {
	counts := make(map[string]map[string]int)
	for _, sent := range corpus {
		for _, token := range sent {
			tagFreqs, exists := counts[token.Token]
			if !exists {
				tagFreqs = make(map[string]int, 2)
				counts[token.Token] = tagFreqs
			}
			tagFreqs[token.POS]++
		}
	}
	d := &TagDictionary{Tags: make(map[string]string)}
	for word, tagFreqs := range counts {
		tag, mode, n := modeOf(tagFreqs)
		if n >= freqThresh && float64(mode)/float64(n) >= ambiguityThresh {
			d.Tags[word] = tag
		}
	}
	return d
}

func modeOf(tagFreqs map[string]int) (tag string, mode, n int) {
	for t, count := range tagFreqs {
		n += count
		if count > mode || (count == mode && t < tag) {
			tag, mode = t, count
		}
	}
	return
}

// Lookup is safe on a nil dictionary, which knows no words
func (d *TagDictionary) Lookup(word string) (string, bool) {
	if d == nil {
		return "", false
	}
	tag, exists := d.Tags[word]
	return tag, exists
}

func (d *TagDictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Tags)
}
