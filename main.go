package main

import (
	"flag"
	"fmt"
	"os"

	"aptag/app"

	log "github.com/golang/glog"
)

func main() {
	// glog registers its flags on the standard flag set; commands parse
	// their own flags
	flag.Set("logtostderr", "true")

	err := app.AllCommands().Dispatch(os.Args[1:])
	log.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
