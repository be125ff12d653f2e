package utils

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging sets level and output style from LOG_LEVEL and LOG_STYLE env variables
func ConfigureLogging() {
	level, err := log.ParseLevel(Getenv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	switch strings.ToLower(Getenv("LOG_STYLE", "plain")) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// Log creates log entry with fields from key-value pairs, e.g. Log("attempt", 1, "err", err.Error())
func Log(args ...interface{}) *log.Entry {
	fields := log.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		fields[fmt.Sprint(args[i])] = args[i+1]
	}
	return log.WithFields(fields)
}

// split key-value pairs and optional trailing message
func logArgs(args []interface{}) ([]interface{}, string) {
	if len(args)%2 == 0 {
		return args, ""
	}
	return args[:len(args)-1], fmt.Sprint(args[len(args)-1])
}

func LogTrace(args ...interface{}) {
	pairs, msg := logArgs(args)
	Log(pairs...).Trace(msg)
}

func LogDebug(args ...interface{}) {
	pairs, msg := logArgs(args)
	Log(pairs...).Debug(msg)
}

func LogInfo(args ...interface{}) {
	pairs, msg := logArgs(args)
	Log(pairs...).Info(msg)
}

func LogWarn(args ...interface{}) {
	pairs, msg := logArgs(args)
	Log(pairs...).Warn(msg)
}

func LogError(args ...interface{}) {
	pairs, msg := logArgs(args)
	Log(pairs...).Error(msg)
}
