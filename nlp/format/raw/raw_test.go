package raw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	sents, err := Read(strings.NewReader("The dog  barked .\n\n\tIt was loud .\n"), 0)
	require.NoError(t, err)
	require.Len(t, sents, 2)
	assert.Equal(t, []string{"The", "dog", "barked", "."}, sents[0].Tokens())
	assert.Equal(t, []string{"It", "was", "loud", "."}, sents[1].Tokens())

	sents, err = Read(strings.NewReader("a b\nc d\ne\n"), 2)
	require.NoError(t, err)
	assert.Len(t, sents, 2)
}
