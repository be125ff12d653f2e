package utils

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// load environment variable or return default value
func Getenv(key, defaultt string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultt
}

// load environment variable or fail
func GetenvOrFail(envname string) string {
	value := os.Getenv(envname)
	if value == "" {
		panic(fmt.Sprintf("Set %s env variable!", envname))
	}

	return value
}

// parse bool value from env variable
func GetBoolEnvOrDefault(envname string, defval bool) bool {
	value := os.Getenv(envname)
	if value == "" {
		return defval
	}

	parsedBool, err := strconv.ParseBool(value)
	if err != nil {
		panic(err)
	}

	return parsedBool
}

// load int environment variable or load default
func GetIntEnvOrDefault(envname string, defval int) int {
	valueStr := os.Getenv(envname)
	if valueStr == "" {
		return defval
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		panic(fmt.Sprintf("Unable convert '%s' env var '%s' to int!", envname, valueStr))
	}

	return value
}

// set environment variable or fail
func SetenvOrFail(envname, value string) string {
	err := os.Setenv(envname, value)
	if err != nil {
		panic(err)
	}

	return value
}

// LoadEnvFiles loads env files listed in ENV_FILE (comma separated), existing variables are kept
func LoadEnvFiles() {
	envFiles := Getenv("ENV_FILE", "")
	if envFiles == "" {
		return
	}
	files := strings.Split(envFiles, ",")
	Log("files", files).Debug("Loading env files")
	if err := godotenv.Load(files...); err != nil {
		Log("err", err.Error(), "files", files).Panic("Could not load env file")
	}
}

// Catches panics, and logs them to stderr, then exit conditionally
func LogPanics(exitAfterLogging bool) {
	if obj := recover(); obj != nil {
		stack := string(debug.Stack())
		stackLine := strings.ReplaceAll(stack, "\n", "|")
		Log("err", obj, "stack", stackLine).Error("Panicked")
		if exitAfterLogging {
			os.Exit(1)
		}
	}
}

func PtrString(v string) *string { return &v }
