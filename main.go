package main

import (
	"app/base/core"
	"app/base/utils"
	"app/platform"
	"app/slice"
	"log"
	"os"

	_ "go.uber.org/automaxprocs"
)

func main() {
	core.HandleSignals()
	core.ConfigureApp()

	defer utils.LogPanics(true)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "check":
			capability := ""
			if len(os.Args) > 2 {
				capability = os.Args[2]
			}
			slice.RunCheck(capability)
			return
		case "platform":
			platform.RunPlatformMock()
			return
		case "print_clowder_params":
			utils.PrintClowderParams()
			return
		}
	}
	log.Fatal("You need to provide a command")
}
