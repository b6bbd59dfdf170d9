package eval

import (
	"fmt"
	"sort"

	"aptag/nlp/types"
	"aptag/util"
)

func Precision(truePositives, testPositives int) float64 {
	if testPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(testPositives)
}

func Recall(truePositives, conditionPositives int) float64 {
	if conditionPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(conditionPositives)
}

func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2.0 * (precision * recall) / (precision + recall)
}

type Error interface {
	String() string
	Class() string
}

type Errors []Error

func (ers Errors) ByType() map[string]int {
	retval := make(map[string]int)
	for _, e := range ers {
		retval[e.Class()]++
	}
	return retval
}

// TagError is a token tagged Guess whose gold tag is Gold
type TagError struct {
	Position    int
	Word        string
	Gold, Guess string
}

func (e TagError) String() string {
	return fmt.Sprintf("%d %s: %s tagged %s", e.Position, e.Word, e.Gold, e.Guess)
}

func (e TagError) Class() string {
	return e.Gold + "->" + e.Guess
}

// Result scores one sentence
type Result struct {
	Correct, Incorrect int
	Errors             Errors
}

func (r *Result) All() int {
	return r.Correct + r.Incorrect
}

func (r *Result) Accuracy() float64 {
	if r.All() == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.All())
}

type Eval func(gold, guess types.TaggedSentence) (*Result, error)

var _ Eval = Tagging

// Tagging compares two taggings of the same words position by position
func Tagging(gold, guess types.TaggedSentence) (*Result, error) {
	goldTokens, guessTokens := gold.TaggedTokens(), guess.TaggedTokens()
	if len(goldTokens) != len(guessTokens) {
		return nil, fmt.Errorf("gold has %d tokens, guess %d", len(goldTokens), len(guessTokens))
	}
	r := &Result{}
	for i, goldToken := range goldTokens {
		if goldToken.POS == guessTokens[i].POS {
			r.Correct++
			continue
		}
		r.Incorrect++
		r.Errors = append(r.Errors, TagError{i, goldToken.Token, goldToken.POS, guessTokens[i].POS})
	}
	return r, nil
}

// Total accumulates sentence results and per tag counts
type Total struct {
	Result
	Results           []*Result
	Exact, Population int

	gold, guessed, matched map[string]int
}

func NewTotal(keepResults bool) *Total {
	t := &Total{
		gold:    make(map[string]int),
		guessed: make(map[string]int),
		matched: make(map[string]int),
	}
	if keepResults {
		t.Results = make([]*Result, 0, 100)
	}
	return t
}

// AddSentence scores guess against gold and accumulates the result
func (t *Total) AddSentence(gold, guess types.TaggedSentence) (*Result, error) {
	r, err := Tagging(gold, guess)
	if err != nil {
		return nil, err
	}
	guessTags := guess.Tags()
	for i, tag := range gold.Tags() {
		t.gold[tag]++
		t.guessed[guessTags[i]]++
		if tag == guessTags[i] {
			t.matched[tag]++
		}
	}
	t.Add(r)
	return r, nil
}

func (t *Total) Add(r *Result) {
	t.Correct += r.Correct
	t.Incorrect += r.Incorrect
	t.Errors = append(t.Errors, r.Errors...)
	if r.Incorrect == 0 {
		t.Exact += 1
	}
	t.Population += 1
	if t.Results != nil {
		t.Results = append(t.Results, r)
	}
}

func (t *Total) ExactMatch() float64 {
	if t.Population == 0 {
		return 0
	}
	return float64(t.Exact) / float64(t.Population)
}

// GoldTags returns the tags seen in gold sentences in lexicographic order
func (t *Total) GoldTags() []string {
	tags := make([]string, 0, len(t.gold))
	for tag := range t.gold {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// TagScores returns precision, recall and F1 of a single tag
func (t *Total) TagScores(tag string) (precision, recall, f1 float64) {
	precision = Precision(t.matched[tag], t.guessed[tag])
	recall = Recall(t.matched[tag], t.gold[tag])
	return precision, recall, F1(precision, recall)
}

// TopErrors returns the n most frequent gold->guess confusions
func (t *Total) TopErrors(n int) []util.TopNStrIntDatum {
	return util.GetTopNStrInt(t.Errors.ByType(), n)
}
