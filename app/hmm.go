package app

import (
	"fmt"

	"aptag/nlp/format/pos"
	"aptag/nlp/hmm"
	"aptag/nlp/types"

	log "github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// CountUnknown is the number of tokens of corpus the model never saw
func CountUnknown(model *hmm.HMM, corpus types.Corpus) int {
	var unknown int
	for _, sent := range corpus {
		for _, token := range sent {
			if !model.Known(token.Token) {
				unknown++
			}
		}
	}
	return unknown
}

func HMMTrainAndEvaluate(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"train", "test"}); err != nil {
		return err
	}
	if !(Smoothing >= 0) {
		return fmt.Errorf("smoothing must not be negative, got %v", Smoothing)
	}
	for _, filename := range []string{trainFile, testFile} {
		if err := VerifyExists(filename); err != nil {
			return err
		}
	}
	corpus, err := pos.ReadFile(trainFile, limit)
	if err != nil {
		return err
	}
	gold, err := pos.ReadFile(testFile, 0)
	if err != nil {
		return err
	}
	model := hmm.Estimate(corpus, Smoothing)
	if allOut {
		log.Info("Configuration")
		log.Infof("Smoothing:\t%v", Smoothing)
		log.Infof("Train file:\t%s (%d sentences)", trainFile, len(corpus))
		log.Infof("Test file:\t%s (%d sentences)", testFile, len(gold))
		log.Infof("Tags:\t\t%d", len(model.States()))
		log.Infof("Unknown tokens:\t%d", CountUnknown(model, gold))
	}
	total, err := Evaluate(model, gold, outFile)
	if err != nil {
		return err
	}
	Report(total)
	return nil
}

func HMMCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       HMMTrainAndEvaluate,
		UsageLine: "hmm <file options> [arguments]",
		Short:     "estimates a bigram HMM tagger and evaluates it with viterbi decoding",
		Long: `
estimates a smoothed bigram HMM from a (TAG WORD) corpus and evaluates it

	$ ./aptag hmm -train <corpus> -test <corpus> [-k <smoothing>] [-o <output>]

`,
		Flag: *flag.NewFlagSet("hmm", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainFile, "train", "", "Training Corpus File")
	cmd.Flag.StringVar(&testFile, "test", "", "Gold Test Corpus File")
	cmd.Flag.StringVar(&outFile, "o", "", "Optional - Output Corpus File")
	cmd.Flag.Float64Var(&Smoothing, "k", hmm.DEFAULT_SMOOTHING, "Add-k Smoothing")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit training set")
	return cmd
}
