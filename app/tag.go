package app

import (
	"os"

	"aptag/nlp/format/raw"
	"aptag/nlp/format/taggedsentence"
	"aptag/nlp/tagger"

	log "github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func TagRaw(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"m", "i"}); err != nil {
		return err
	}
	for _, filename := range []string{modelFile, input} {
		if err := VerifyExists(filename); err != nil {
			return err
		}
	}
	t, err := tagger.ReadFile(modelFile)
	if err != nil {
		return err
	}
	sents, err := raw.ReadFile(input, limit)
	if err != nil {
		return err
	}
	if allOut {
		log.Infof("Tagging %d sentences from %s", len(sents), input)
	}
	tagged := t.TagAll(sents)
	if len(outFile) == 0 {
		return taggedsentence.Write(os.Stdout, tagged)
	}
	if err := taggedsentence.WriteFile(outFile, tagged); err != nil {
		return err
	}
	if allOut {
		log.Infof("Wrote %d tagged sentences to %s", len(tagged), outFile)
	}
	return nil
}

func TagCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TagRaw,
		UsageLine: "tag <file options> [arguments]",
		Short:     "tags raw text, one sentence per line",
		Long: `
tags raw text with a trained model, writing word/TAG lines

	$ ./aptag tag -m <model> -i <raw text> [-o <output>]

`,
		Flag: *flag.NewFlagSet("tag", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model File")
	cmd.Flag.StringVar(&input, "i", "", "Raw Input File")
	cmd.Flag.StringVar(&outFile, "o", "", "Optional - Output File (default stdout)")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit number of sentences")
	return cmd
}
