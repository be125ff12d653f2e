package core

import (
	"app/base"
	"app/base/utils"
	"os"
	"os/signal"
	"syscall"
)

func HandleSignals() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-c
		utils.Log().Info("SIGTERM handled")
		base.CancelContext()
	}()
}
