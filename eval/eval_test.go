package eval

import (
	"testing"

	"aptag/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagging(t *testing.T) {
	words := []string{"The", "dog", "runs", "."}
	gold := types.Zip(words, []string{"DT", "NN", "VBZ", "."})
	guess := types.Zip(words, []string{"DT", "VB", "NNS", "."})

	r, err := Tagging(gold, guess)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Correct)
	assert.Equal(t, 2, r.Incorrect)
	assert.Equal(t, 0.5, r.Accuracy())
	require.Len(t, r.Errors, 2)
	assert.Equal(t, "NN->VB", r.Errors[0].Class())
	assert.Equal(t, "2 runs: VBZ tagged NNS", r.Errors[1].String())

	_, err = Tagging(gold, types.Zip([]string{"The"}, []string{"DT"}))
	assert.Error(t, err)
}

func TestTotal(t *testing.T) {
	total := NewTotal(true)
	words := []string{"a", "b"}
	_, err := total.AddSentence(types.Zip(words, []string{"X", "Y"}), types.Zip(words, []string{"X", "Y"}))
	require.NoError(t, err)
	_, err = total.AddSentence(types.Zip(words, []string{"X", "Y"}), types.Zip(words, []string{"Y", "Y"}))
	require.NoError(t, err)
	_, err = total.AddSentence(types.Zip(words, []string{"X", "X"}), types.Zip(words, []string{"Y", "X"}))
	require.NoError(t, err)

	assert.Equal(t, 4, total.Correct)
	assert.Equal(t, 6, total.All())
	assert.InDelta(t, 4.0/6.0, total.Accuracy(), 1e-12)
	assert.Equal(t, 1, total.Exact)
	assert.InDelta(t, 1.0/3.0, total.ExactMatch(), 1e-12)
	assert.Len(t, total.Results, 3)

	top := total.TopErrors(5)
	require.Len(t, top, 1)
	assert.Equal(t, "X->Y", top[0].S)
	assert.Equal(t, 2, top[0].N)

	// X: gold 4, guessed 2, matched 2
	precision, recall, f1 := total.TagScores("X")
	assert.Equal(t, 1.0, precision)
	assert.Equal(t, 0.5, recall)
	assert.InDelta(t, 2.0/3.0, f1, 1e-12)

	assert.Equal(t, []string{"X", "Y"}, total.GoldTags())

	precision, recall, f1 = total.TagScores("Z")
	assert.Zero(t, precision)
	assert.Zero(t, recall)
	assert.Zero(t, f1)
}

func TestEmptyTotal(t *testing.T) {
	total := NewTotal(false)
	assert.Zero(t, total.Accuracy())
	assert.Zero(t, total.ExactMatch())
	assert.Empty(t, total.TopErrors(3))
	assert.Empty(t, total.GoldTags())
	assert.Nil(t, total.Results)
}
