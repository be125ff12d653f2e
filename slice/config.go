package slice

import (
	"app/base/types/entitlements"
	"app/base/utils"
	"time"

	log "github.com/sirupsen/logrus"
)

// Device flag enabling EAP-AKA bypass, the device accepts any challenge. Testing only.
const KeyBypassEapAkaAuth = "bypass_eap_aka_auth_for_slice_purchase_enabled"

type CarrierConfig interface {
	GetString(key string, defval string) string
}

type FeatureFlags interface {
	GetBool(key string, defval bool) bool
}

type Config struct {
	ServerURL        string
	BypassEapAkaAuth bool
	// Map ProvisionTimeLeft and ServiceFlow_URL to their own fields. By default the legacy mapping is kept:
	// ProvisionTimeLeft overrides EntitlementStatus, ServiceFlow_URL is parsed into ProvisionStatus
	CorrectedFieldMapping bool
	Debug                 bool
	// Transport timeout, zero means no timeout
	Timeout time.Duration
}

// GetEntitlementServerURL returns entitlement server url from carrier config or empty string
func GetEntitlementServerURL(carrierConfig CarrierConfig) string {
	return carrierConfig.GetString(entitlements.KeyEntitlementServerURL, "")
}

func IsBypassEapAkaAuthEnabled(flags FeatureFlags) bool {
	return flags.GetBool(KeyBypassEapAkaAuth, false)
}

func ConfigFromSources(carrierConfig CarrierConfig, flags FeatureFlags) Config {
	return Config{
		ServerURL:        GetEntitlementServerURL(carrierConfig),
		BypassEapAkaAuth: IsBypassEapAkaAuthEnabled(flags),
	}
}

// ConfigFromEnv reads carrier config from CARRIER_CONFIG and device flags from DEVICE_CONFIG
func ConfigFromEnv() Config {
	cfg := ConfigFromSources(utils.ReadPodConfig("CARRIER_CONFIG"), utils.ReadPodConfig("DEVICE_CONFIG"))
	cfg.CorrectedFieldMapping = utils.GetBoolEnvOrDefault("ENTITLEMENT_CORRECTED_MAPPING", false)
	cfg.Timeout = time.Duration(utils.GetIntEnvOrDefault("ENTITLEMENT_TIMEOUT_SECONDS", 30)) * time.Second
	cfg.Debug = log.IsLevelEnabled(log.TraceLevel)
	return cfg
}
