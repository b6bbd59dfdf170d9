package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"aptag/nlp/format/pos"
	"aptag/nlp/tagger"

	log "github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func TrainTagger(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"train", "m"}); err != nil {
		return err
	}
	if err := VerifyExists(trainFile); err != nil {
		return err
	}
	setup, err := LoadSetup(cmd)
	if err != nil {
		return err
	}
	if allOut {
		TrainingConfigOut(setup)
		log.Infof("Train file:\t\t%s", trainFile)
		log.Infof("Model file:\t\t%s", modelFile)
	}

	corpus, err := pos.ReadFile(trainFile, limit)
	if err != nil {
		return err
	}
	if allOut {
		log.Infof("Read %d sentences (%d tokens)", len(corpus), corpus.NumTokens())
	}
	dict := tagger.NewTagDictionary(corpus, setup.FreqThreshold, setup.AmbiguityThreshold)
	t := tagger.NewTagger(dict)
	t.Seed = setup.Seed
	t.Log = allOut
	t.Model.Log = allOut
	t.Model.Precision = setup.Precision

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := t.Train(ctx, corpus, setup.Iterations); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	if err := tagger.WriteFile(modelFile, t); err != nil {
		return err
	}
	if allOut {
		log.Infof("Wrote model with %d weights and %d dictionary words to %s", t.Model.Weights.Len(), t.Dict.Len(), modelFile)
	}
	return nil
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TrainTagger,
		UsageLine: "train <file options> [arguments]",
		Short:     "trains a tagger on a (TAG WORD) corpus",
		Long: `
trains an averaged perceptron tagger

	$ ./aptag train -train <corpus> -m <model> [-it <iterations>] [-conf <yaml>] [-seed <seed>]

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainFile, "train", "", "Training Corpus File")
	cmd.Flag.StringVar(&modelFile, "m", "", "Output Model File")
	cmd.Flag.StringVar(&confFile, "conf", "", "Optional - Training Configuration File (YAML)")
	cmd.Flag.IntVar(&Iterations, "it", 5, "Number of Perceptron Iterations")
	cmd.Flag.Int64Var(&Seed, "seed", 1, "Corpus Shuffle Seed")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit training set")
	return cmd
}
