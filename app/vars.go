package app

import (
	"fmt"
	"os"

	"aptag/eval"
	"aptag/util/conf"

	log "github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const (
	QUIET_FLAG = "q"
	TOP_ERRORS = 10
)

var (
	allOut bool = true
	quiet  bool

	// processing options
	Iterations int
	Seed       int64
	Smoothing  float64
	limit      int

	// file names
	trainFile string
	testFile  string
	input     string
	outFile   string
	modelFile string
	confFile  string
)

func VerifyExists(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("accessing %s: %w", filename, err)
	}
	return nil
}

// VerifyFlags fails if any required flag is unset
func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %s", name)
		}
		if f.Value.String() == "" {
			return fmt.Errorf("required flag -%s not set (usage: %s)", f.Name, cmd.UsageLine)
		}
	}
	return nil
}

// SetFlags returns the names of flags given on the command line
func SetFlags(flags *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// LoadSetup reads the training configuration file (defaults if none is
// given) and applies the flags set on the command line over it
func LoadSetup(cmd *commander.Command) (*conf.Training, error) {
	setup := conf.Default()
	if len(confFile) > 0 {
		var err error
		if setup, err = conf.ReadFile(confFile); err != nil {
			return nil, fmt.Errorf("configuration %s: %w", confFile, err)
		}
	}
	set := SetFlags(&cmd.Flag)
	if set["it"] {
		setup.Iterations = Iterations
	}
	if set["seed"] {
		setup.Seed = Seed
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	return setup, nil
}

func TrainingConfigOut(setup *conf.Training) {
	log.Info("Configuration")
	log.Infof("Iterations:\t\t%d", setup.Iterations)
	log.Infof("Freq. Threshold:\t%d", setup.FreqThreshold)
	log.Infof("Ambiguity Threshold:\t%v", setup.AmbiguityThreshold)
	log.Infof("Precision:\t\t%d", setup.Precision)
	log.Infof("Seed:\t\t\t%d", setup.Seed)
	if len(confFile) > 0 {
		log.Infof("Config file:\t\t%s", confFile)
	}
}

// Report logs and prints the outcome of an evaluation
func Report(total *eval.Total) {
	fmt.Printf("Tagged %.4f%% of tags correctly (%d/%d)\n", total.Accuracy()*100, total.Correct, total.All())
	if !allOut {
		return
	}
	log.Infof("Sentences:\t%d", total.Population)
	log.Infof("Exact match:\t%.4f%%", total.ExactMatch()*100)
	log.Infof("Top %d errors (gold->guess)", TOP_ERRORS)
	for _, e := range total.TopErrors(TOP_ERRORS) {
		log.Infof("\t%s\t%d", e.S, e.N)
	}
	log.Info("Per tag (precision recall F1)")
	for _, line := range TagScoreLines(total) {
		log.Info(line)
	}
}

// TagScoreLines formats precision, recall and F1 of every gold tag
func TagScoreLines(total *eval.Total) []string {
	tags := total.GoldTags()
	lines := make([]string, len(tags))
	for i, tag := range tags {
		precision, recall, f1 := total.TagScores(tag)
		lines[i] = fmt.Sprintf("\t%s\t%.4f\t%.4f\t%.4f", tag, precision, recall, f1)
	}
	return lines
}
