package core

import (
	"app/base/utils"
)

func ConfigureApp() {
	utils.LoadEnvFiles()
	utils.ConfigureLogging()
}

func SetupTestEnvironment() {
	utils.SetenvOrFail("LOG_LEVEL", "debug")
	ConfigureApp()
}
