package slice

import (
	"app/base"
	"app/base/anomaly"
	"app/base/types/entitlements"
	"app/base/utils"
	"encoding/json"
	"fmt"
)

// RunCheck runs single entitlement check configured from env and prints the result
func RunCheck(capabilityArg string) {
	if capabilityArg == "" {
		capabilityArg = utils.Getenv("CAPABILITY", entitlements.CapabilityPrioritizeLatency.String())
	}
	capability, err := entitlements.ParseCapability(capabilityArg)
	if err != nil {
		utils.Log("err", err.Error()).Fatal("Invalid capability")
	}

	reporter := anomaly.FromEnv()
	defer pushMetrics()
	defer func() {
		if multi, ok := reporter.(anomaly.Multi); ok {
			if err := multi.Close(); err != nil {
				utils.LogError("err", err.Error(), "unable to close anomaly reporter")
			}
		}
	}()

	cfg := ConfigFromEnv()
	utils.LogInfo("server_url", cfg.ServerURL, "bypass_eap_aka", cfg.BypassEapAkaAuth,
		"capability", capability.String(), "Checking entitlement status")
	result := NewEntitlementAPI(cfg, reporter).CheckEntitlementStatus(base.Context, capability)
	if result == nil {
		utils.LogWarn("capability", capability.String(), "Entitlement status unknown")
		fmt.Println("null")
		return
	}

	out, err := json.Marshal(result)
	if err != nil {
		utils.LogError("err", err.Error(), "unable to serialize entitlement result")
		return
	}
	utils.LogInfo("entitled", result.IsEntitled(), "provisioned", result.IsProvisioned(), "Entitlement checked")
	fmt.Println(string(out))
}
