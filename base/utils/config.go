package utils

import (
	"app/base/types/entitlements"
	"fmt"
	"os"
	"strconv"
	"strings"

	clowder "github.com/redhatinsights/app-common-go/pkg/api/v1"
)

// PodConfigMap holds `key=value;key2=value2` style configuration, a key without value means `true`
type PodConfigMap map[string]string

// ParsePodConfig parses `key=value;key2=value2` string
func ParsePodConfig(raw string) PodConfigMap {
	pc := PodConfigMap{}
	for _, item := range strings.Split(raw, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, found := strings.Cut(item, "=")
		if !found {
			value = "true"
		}
		pc[strings.TrimSpace(key)] = value
	}
	return pc
}

// ReadPodConfig reads pod config from given env variable
func ReadPodConfig(envname string) PodConfigMap {
	return ParsePodConfig(os.Getenv(envname))
}

func (pc PodConfigMap) GetBool(key string, defval bool) bool {
	value, has := pc[key]
	if !has {
		return defval
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		Log("key", key, "value", value).Warn("Invalid bool value in pod config, using default")
		return defval
	}
	return parsed
}

func (pc PodConfigMap) GetString(key string, defval string) string {
	value, has := pc[key]
	if !has {
		return defval
	}
	return value
}

// IsClowderEnabled Check env variable CLOWDER_ENABLED = "true".
func IsClowderEnabled() bool {
	clowderEnabled := GetBoolEnvOrDefault("CLOWDER_ENABLED", false)
	return clowderEnabled
}

// PrintClowderParams Print Clowder params to export environment variables.
func PrintClowderParams() {
	fmt.Println("Trying to export variables from Clowder")
	if IsClowderEnabled() {
		fmt.Println("Clowder config enabled, exporting variables..")
		if clowder.LoadedConfig.PublicPort != nil {
			fmt.Printf("PLATFORM_PORT=%d\n", *clowder.LoadedConfig.PublicPort)
		}
		fmt.Printf("METRICS_PORT=%d\n", clowder.LoadedConfig.MetricsPort)
		fmt.Printf("METRICS_PATH=%s\n", clowder.LoadedConfig.MetricsPath)
		// Kafka
		printKafkaParams()
		// Services (entitlement server)
		printServicesParams()
		fmt.Println("...done")
	} else {
		fmt.Println("Clowder not enabled")
	}
}

func printKafkaParams() {
	if clowder.LoadedConfig.Kafka == nil || len(clowder.LoadedConfig.Kafka.Brokers) == 0 {
		return
	}
	broker := clowder.LoadedConfig.Kafka.Brokers[0]
	if broker.Port != nil {
		fmt.Printf("KAFKA_ADDRESS=%s:%d\n", broker.Hostname, *broker.Port)
	}
	topic := os.Getenv("ANOMALY_TOPIC")
	if len(topic) > 0 {
		fmt.Printf("ANOMALY_TOPIC=%s\n", clowder.KafkaTopics[topic].Name)
	}
}

func printServicesParams() {
	for _, endpoint := range clowder.LoadedConfig.Endpoints {
		if endpoint.App == "entitlement-server" {
			fmt.Printf("CARRIER_CONFIG=%s=http://%s:%d\n",
				entitlements.KeyEntitlementServerURL, endpoint.Hostname, endpoint.Port)
		}
	}
}
