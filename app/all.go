package app

import (
	"os"
	"time"

	log "github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var AppCommands []*commander.Command = []*commander.Command{
	TrainCmd(),
	TagCmd(),
	EvaluateCmd(),
	HMMCmd(),
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0] + " <command> [options]",
		Short:       "averaged perceptron part-of-speech tagger",
		Subcommands: AppCommands,
		Flag:        *flag.NewFlagSet("aptag", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.BoolVar(&quiet, QUIET_FLAG, false, "Only log errors")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	allOut = !quiet
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		start := time.Now()
		defer log.Flush()
		err := f(cmd, args)
		if allOut && err == nil {
			log.Infof("%s finished in %v", cmd.Name(), time.Since(start))
		}
		return err
	}
	return wrapped
}
