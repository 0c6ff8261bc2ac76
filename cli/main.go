package main

import (
	"log"

	"github.com/gentem/gentem/cli/cmd"
	"github.com/gentem/gentem/cli/util"
	"github.com/gentem/gentem/cli/version"
)

func main() {
	defer func() {
		// A panic is reported as an internal error together with the version.
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
