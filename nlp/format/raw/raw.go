package raw

// Package raw reads raw text files
// every line holds one sentence of whitespace separated tokens

import (
	"bufio"
	"io"
	"os"
	"strings"

	"aptag/nlp/types"
)

const MAX_LINE = 1024 * 1024

// Read returns up to limit sentences (all if limit <= 0), skipping blank lines
func Read(reader io.Reader, limit int) ([]types.BasicSentence, error) {
	var sentences []types.BasicSentence
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE)
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		sentences = append(sentences, types.NewBasicSentence(words))
		if limit > 0 && len(sentences) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]types.BasicSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, limit)
}
