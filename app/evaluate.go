package app

import (
	"aptag/eval"
	"aptag/nlp/format/pos"
	"aptag/nlp/tagger"
	"aptag/nlp/types"

	log "github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// Tagger is any tagger the evaluation flow can score
type Tagger interface {
	Tag(sent types.Sentence) types.BasicTaggedSentence
}

// Evaluate tags the words of every gold sentence and scores the result,
// writing the guesses in corpus format to out if it is given
func Evaluate(t Tagger, gold types.Corpus, out string) (*eval.Total, error) {
	total := eval.NewTotal(false)
	guesses := make([]types.BasicTaggedSentence, len(gold))
	for i, sent := range gold {
		guesses[i] = t.Tag(sent)
		if _, err := total.AddSentence(sent, guesses[i]); err != nil {
			return nil, err
		}
	}
	if len(out) > 0 {
		if err := pos.WriteFile(out, guesses); err != nil {
			return nil, err
		}
		if allOut {
			log.Infof("Wrote %d tagged sentences to %s", len(guesses), out)
		}
	}
	return total, nil
}

func EvaluateTagger(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"m", "test"}); err != nil {
		return err
	}
	for _, filename := range []string{modelFile, testFile} {
		if err := VerifyExists(filename); err != nil {
			return err
		}
	}
	t, err := tagger.ReadFile(modelFile)
	if err != nil {
		return err
	}
	gold, err := pos.ReadFile(testFile, limit)
	if err != nil {
		return err
	}
	if allOut {
		log.Infof("Evaluating %s against %s (%d sentences)", modelFile, testFile, len(gold))
	}
	total, err := Evaluate(t, gold, outFile)
	if err != nil {
		return err
	}
	Report(total)
	return nil
}

func EvaluateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       EvaluateTagger,
		UsageLine: "evaluate <file options> [arguments]",
		Short:     "measures tagging accuracy on a (TAG WORD) corpus",
		Long: `
tags the words of a gold corpus and compares the tags

	$ ./aptag evaluate -m <model> -test <corpus> [-o <output>]

`,
		Flag: *flag.NewFlagSet("evaluate", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model File")
	cmd.Flag.StringVar(&testFile, "test", "", "Gold Test Corpus File")
	cmd.Flag.StringVar(&outFile, "o", "", "Optional - Output Corpus File")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit test set")
	return cmd
}
