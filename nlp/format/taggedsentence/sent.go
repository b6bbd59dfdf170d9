// Package taggedsentence reads and writes word/TAG files, one sentence per
// line
package taggedsentence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"aptag/nlp/types"
)

const MAX_LINE = 1024 * 1024

// ParseToken splits on the last slash, so words may contain slashes. The tag
// may be empty, as written for words a model could not tag.
func ParseToken(taggedTokenString string) (types.TaggedToken, error) {
	split := strings.LastIndex(taggedTokenString, "/")
	if split <= 0 {
		return types.TaggedToken{}, fmt.Errorf("untagged token: %s", taggedTokenString)
	}
	return types.TaggedToken{
		Token: taggedTokenString[:split],
		POS:   taggedTokenString[split+1:],
	}, nil
}

func Read(reader io.Reader) (types.Corpus, error) {
	var (
		corpus types.Corpus
		i      int
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE)
	for scanner.Scan() {
		i++
		taggedTokenStrings := strings.Fields(scanner.Text())
		if len(taggedTokenStrings) == 0 {
			continue
		}
		sent := make(types.BasicTaggedSentence, len(taggedTokenStrings))
		for j, taggedTokenString := range taggedTokenStrings {
			token, err := ParseToken(taggedTokenString)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			sent[j] = token
		}
		corpus = append(corpus, sent)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return corpus, nil
}

func ReadFile(filename string) (types.Corpus, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

func Write(writer io.Writer, sents []types.BasicTaggedSentence) error {
	bufWriter := bufio.NewWriter(writer)
	for _, sent := range sents {
		if _, err := bufWriter.WriteString(sent.String()); err != nil {
			return err
		}
		if err := bufWriter.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bufWriter.Flush()
}

func WriteFile(filename string, sents []types.BasicTaggedSentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(file, sents); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
