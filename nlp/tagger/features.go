package tagger

import (
	"aptag/alg/featurevector"
	"aptag/nlp/types"
	"aptag/util"
)

const SUFFIX_LENGTH = 3

// Feature template names
const (
	F_BIAS          = "bias"
	F_SUFFIX        = "i suffix"
	F_PREF1         = "i pref1"
	F_PREV_TAG      = "i-1 tag"
	F_PREV2_TAG     = "i-2 tag"
	F_TAG_BIGRAM    = "i tag+i-2 tag"
	F_WORD          = "i word"
	F_PREV_TAG_WORD = "i-1 tag+i word"
	F_PREV_WORD     = "i-1 word"
	F_PREV_SUFFIX   = "i-1 suffix"
	F_PREV2_WORD    = "i-2 word"
	F_NEXT_WORD     = "i+1 word"
	F_NEXT_SUFFIX   = "i+1 suffix"
	F_NEXT2_WORD    = "i+2 word"
)

// NUM_TEMPLATES is the number of templates instantiated per token
const NUM_TEMPLATES = 14

// Context normalizes words and pads them with two start and two end markers
func Context(words []string) []string {
	context := make([]string, 0, len(words)+4)
	context = append(context, types.START, types.START2)
	for _, w := range words {
		context = append(context, Normalize(w))
	}
	return append(context, types.END, types.END2)
}

func suffix(word string) string {
	return util.Suffix(word, SUFFIX_LENGTH)
}

// Features instantiates every template for the token at position i of words.
// context is Context(words), so position i sits at context[i+2]; prev and
// prev2 are the tags predicted for the two preceding tokens.
func Features(i int, words []string, context []string, prev, prev2 string) featurevector.FeatureSet {
	word := words[i]
	c := i + 2
	features := featurevector.NewFeatureSet()
	features.Add(F_BIAS)
	features.Add(F_SUFFIX, suffix(word))
	features.Add(F_PREF1, util.Prefix(word, 1))
	features.Add(F_PREV_TAG, prev)
	features.Add(F_PREV2_TAG, prev2)
	features.Add(F_TAG_BIGRAM, prev, prev2)
	features.Add(F_WORD, context[c])
	features.Add(F_PREV_TAG_WORD, prev, context[c])
	features.Add(F_PREV_WORD, context[c-1])
	features.Add(F_PREV_SUFFIX, suffix(context[c-1]))
	features.Add(F_PREV2_WORD, context[c-2])
	features.Add(F_NEXT_WORD, context[c+1])
	features.Add(F_NEXT_SUFFIX, suffix(context[c+1]))
	features.Add(F_NEXT2_WORD, context[c+2])
	return features
}
