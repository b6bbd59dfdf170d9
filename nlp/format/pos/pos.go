// Package pos reads and writes bracketed part-of-speech corpora: sequences
// of (TAG WORD) pairs where the word "." closes a sentence. Written corpora
// hold one sentence per line.
package pos

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"aptag/nlp/types"

	log "github.com/golang/glog"
)

// MAX_LINE bounds the length of a single corpus line
const MAX_LINE = 1024 * 1024

var (
	TaggedWord = regexp.MustCompile(`\((\S+)\s+(\S+)\)`)

	ErrNoSentences = errors.New("no tagged sentences")
)

// ParseLine extracts the tagged words of one line, regardless of sentence
// boundaries; ok is false if the line holds none
func ParseLine(line string) (sent types.BasicTaggedSentence, ok bool) {
	matches := TaggedWord.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil, false
	}
	sent = make(types.BasicTaggedSentence, len(matches))
	for i, match := range matches {
		sent[i] = types.TaggedToken{Token: match[2], POS: match[1]}
	}
	return sent, true
}

// Read parses up to limit sentences (all if limit <= 0). A sentence ends
// with the word "." and may span lines; a sentence left open at the end of
// the input is kept. Lines without any tagged word are skipped and logged.
func Read(reader io.Reader, limit int) (types.Corpus, error) {
	var (
		corpus  types.Corpus
		current types.BasicTaggedSentence
		skipped int
		lineNum int
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		tokens, ok := ParseLine(line)
		if !ok {
			skipped++
			log.Warningf("Skipping line %d: no tagged words", lineNum)
			continue
		}
		for _, token := range tokens {
			current = append(current, token)
			if token.Token != types.SENTENCE_END {
				continue
			}
			corpus = append(corpus, current)
			current = nil
			if limit > 0 && len(corpus) >= limit {
				return corpus, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
	}
	if len(current) > 0 {
		corpus = append(corpus, current)
	}
	if skipped > 0 {
		log.Infof("Skipped %d malformed lines", skipped)
	}
	return corpus, nil
}

func ReadFile(filename string, limit int) (types.Corpus, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	corpus, err := Read(file, limit)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoSentences)
	}
	return corpus, nil
}

// Format renders a sentence as one corpus line
func Format(sent types.BasicTaggedSentence) string {
	strs := make([]string, len(sent))
	for i, token := range sent {
		strs[i] = fmt.Sprintf("(%s %s)", token.POS, token.Token)
	}
	return strings.Join(strs, " ")
}

func Write(writer io.Writer, sents []types.BasicTaggedSentence) error {
	bufWriter := bufio.NewWriter(writer)
	for _, sent := range sents {
		if _, err := bufWriter.WriteString(Format(sent)); err != nil {
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
