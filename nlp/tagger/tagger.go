package tagger

import (
	"context"
	"math/rand"

	"aptag/alg/perceptron"
	"aptag/nlp/types"

	log "github.com/golang/glog"
	"github.com/shogo82148/go-shuffle"
)

// Tagger is a greedy left-to-right part-of-speech tagger: every prediction
// becomes the previous-tag context of the next token.
type Tagger struct {
	Model *perceptron.AveragedPerceptron
	// Dict short-circuits the model for unambiguous words; may be nil
	Dict *TagDictionary

	// Seed drives the reshuffling of the corpus between training iterations
	Seed     int64
	Continue perceptron.StopCondition
	Log      bool
}

func NewTagger(dict *TagDictionary) *Tagger {
	return &Tagger{
		Model: perceptron.NewAveragedPerceptron(),
		Dict:  dict,
		Seed:  1,
	}
}

// TagWords returns one tag per word
func (t *Tagger) TagWords(words []string) []string {
	var (
		prev, prev2 = types.START, types.START2
		padded      = Context(words)
		tags        = make([]string, len(words))
	)
	for i, word := range words {
		tag, found := t.Dict.Lookup(word)
		if !found {
			tag = t.Model.Predict(Features(i, words, padded, prev, prev2))
		}
		tags[i] = tag
		prev2 = prev
		prev = tag
	}
	return tags
}

func (t *Tagger) Tag(sent types.Sentence) types.BasicTaggedSentence {
	words := sent.Tokens()
	return types.Zip(words, t.TagWords(words))
}

// TagAll tags each sentence independently
func (t *Tagger) TagAll(sents []types.BasicSentence) []types.BasicTaggedSentence {
	tagged := make([]types.BasicTaggedSentence, len(sents))
	for i, sent := range sents {
		tagged[i] = t.Tag(sent)
		if t.Log {
			log.V(1).Infof("Tagged sentence %d: %v", i, tagged[i])
		}
	}
	return tagged
}

// trainSentence runs the greedy decoder over one gold sentence, updating the
// model at every token the dictionary does not cover. It returns the number
// of correct guesses.
func (t *Tagger) trainSentence(sent types.BasicTaggedSentence) int {
	var (
		prev, prev2 = types.START, types.START2
		words       = sent.Tokens()
		padded      = Context(words)
		correct     int
	)
	for i, token := range sent {
		guess, found := t.Dict.Lookup(token.Token)
		if !found {
			feats := Features(i, words, padded, prev, prev2)
			guess = t.Model.Predict(feats)
			t.Model.Update(token.POS, guess, feats)
		}
		if guess == token.POS {
			correct++
		}
		prev2 = prev
		prev = guess
	}
	return correct
}

// Train runs the perceptron over corpus for the given number of iterations,
// reshuffling the sentence order between iterations, then averages the
// weights. Cancellation is honored between sentences; the weights learned so
// far are still averaged and ctx.Err() is returned.
func (t *Tagger) Train(ctx context.Context, corpus types.Corpus, iterations int) error {
	if t.Continue == nil {
		t.Continue = perceptron.DefaultStopCondition
	}
	if t.Log {
		t.Model.Log = true
	}
	for _, sent := range corpus {
		for _, token := range sent {
			t.Model.AddClass(token.POS)
		}
	}
	if t.Log {
		log.Infof("Training on %d sentences (%d tokens), %d tags, %d dictionary words",
			len(corpus), corpus.NumTokens(), len(t.Model.Classes()), t.Dict.Len())
	}
	defer t.Model.AverageWeights()

	examples := corpus.Copy()
	shuffler := shuffle.New(rand.NewSource(t.Seed))
	for i := 0; t.Continue(i, iterations, t.Model); i++ {
		var c, n int
		for j, sent := range examples {
			if err := ctx.Err(); err != nil {
				log.Warningf("Training cancelled at iteration %d sentence %d", i, j)
				return err
			}
			c += t.trainSentence(sent)
			n += len(sent)
		}
		if t.Log {
			log.Infof("Iteration %d: %d/%d=%.3f%%", i, c, n, pc(c, n))
		}
		shuffler.Shuffle(examples)
	}
	return nil
}

func pc(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}
