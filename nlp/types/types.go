package types

import (
	"reflect"
	"strings"
)

// Context padding around every sentence
const (
	START  = "-START-"
	START2 = "-START2-"
	END    = "-END-"
	END2   = "-END2-"
)

// SENTENCE_END is the word that closes a sentence in a tagged corpus
const SENTENCE_END = "."

type Token string

type TaggedToken struct {
	Token, POS string
}

func (t TaggedToken) String() string {
	return t.Token + "/" + t.POS
}

type Sentence interface {
	Tokens() []string
}

type BasicSentence []Token

var _ Sentence = BasicSentence{}

func (b BasicSentence) Tokens() []string {
	retval := make([]string, len(b))
	for i, val := range b {
		retval[i] = string(val)
	}
	return retval
}

func (b BasicSentence) Equal(other BasicSentence) bool {
	return reflect.DeepEqual(b, other)
}

func NewBasicSentence(words []string) BasicSentence {
	sent := make(BasicSentence, len(words))
	for i, w := range words {
		sent[i] = Token(w)
	}
	return sent
}

type TaggedSentence interface {
	Sentence
	TaggedTokens() []TaggedToken
	Tags() []string
}

// BasicTaggedSentence is a training example: words with their gold tags
type BasicTaggedSentence []TaggedToken

var _ TaggedSentence = BasicTaggedSentence{}

func (b BasicTaggedSentence) Tokens() []string {
	tokens := make([]string, len(b))
	for i, token := range b {
		tokens[i] = token.Token
	}
	return tokens
}

func (b BasicTaggedSentence) Tags() []string {
	tags := make([]string, len(b))
	for i, token := range b {
		tags[i] = token.POS
	}
	return tags
}

func (b BasicTaggedSentence) TaggedTokens() []TaggedToken {
	return []TaggedToken(b)
}

func (b BasicTaggedSentence) Equal(other BasicTaggedSentence) bool {
	return reflect.DeepEqual(b, other)
}

func (b BasicTaggedSentence) String() string {
	strs := make([]string, len(b))
	for i, token := range b {
		strs[i] = token.String()
	}
	return strings.Join(strs, " ")
}

// Zip pairs words with tags; it panics if the lengths differ
func Zip(words, tags []string) BasicTaggedSentence {
	if len(words) != len(tags) {
		panic("words and tags differ in length")
	}
	sent := make(BasicTaggedSentence, len(words))
	for i := range words {
		sent[i] = TaggedToken{words[i], tags[i]}
	}
	return sent
}

// Corpus is an ordered collection of training examples
type Corpus []BasicTaggedSentence

func (c Corpus) Len() int { return len(c) }

func (c Corpus) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c Corpus) Copy() Corpus {
	copied := make(Corpus, len(c))
	copy(copied, c)
	return copied
}

// NumTokens is the number of tagged tokens over all sentences
func (c Corpus) NumTokens() int {
	var n int
	for _, sent := range c {
		n += len(sent)
	}
	return n
}
