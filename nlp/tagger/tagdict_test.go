package tagger

import (
	"testing"

	"aptag/nlp/types"

	"github.com/stretchr/testify/assert"
)

// repeatTags builds a corpus where word occurs once per sentence with each
// of the given tags count times
func repeatTags(word string, counts map[string]int) types.Corpus {
	var corpus types.Corpus
	for tag, n := range counts {
		for i := 0; i < n; i++ {
			corpus = append(corpus, types.Zip([]string{word, "."}, []string{tag, "."}))
		}
	}
	return corpus
}

func TestTagDictionaryFrequencyBoundary(t *testing.T) {
	dict := NewTagDictionary(repeatTags("the", map[string]int{"DT": 20}), 20, 0.97)
	tag, found := dict.Lookup("the")
	assert.True(t, found)
	assert.Equal(t, "DT", tag)

	dict = NewTagDictionary(repeatTags("the", map[string]int{"DT": 19}), 20, 0.97)
	_, found = dict.Lookup("the")
	assert.False(t, found)
}

func TestTagDictionaryAmbiguityBoundary(t *testing.T) {
	dict := NewTagDictionary(repeatTags("run", map[string]int{"VB": 97, "NN": 3}), 20, 0.97)
	tag, found := dict.Lookup("run")
	assert.True(t, found)
	assert.Equal(t, "VB", tag)

	dict = NewTagDictionary(repeatTags("run", map[string]int{"VB": 96, "NN": 4}), 20, 0.97)
	_, found = dict.Lookup("run")
	assert.False(t, found)
}

func TestTagDictionaryModeTie(t *testing.T) {
	dict := NewTagDictionary(repeatTags("that", map[string]int{"WDT": 2, "IN": 2}), 1, 0.5)
	tag, found := dict.Lookup("that")
	assert.True(t, found)
	assert.Equal(t, "IN", tag)
}

func TestTagDictionaryRawWords(t *testing.T) {
	corpus := repeatTags("The", map[string]int{"DT": 3})
	dict := NewTagDictionary(corpus, 3, 1.0)
	_, found := dict.Lookup("the")
	assert.False(t, found)
	_, found = dict.Lookup("The")
	assert.True(t, found)
	assert.Equal(t, 2, dict.Len())
}

func TestTagDictionaryNil(t *testing.T) {
	var dict *TagDictionary
	_, found := dict.Lookup("the")
	assert.False(t, found)
	assert.Equal(t, 0, dict.Len())

	empty := NewTagDictionary(nil, DEFAULT_FREQ_THRESHOLD, DEFAULT_AMBIGUITY_THRESHOLD)
	assert.Equal(t, 0, empty.Len())
}
