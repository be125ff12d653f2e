package slice

import (
	"app/base/types/entitlements"
)

// Placeholder device identity, real vendor, model and software version are never sent to the carrier
const (
	terminalVendor          = "vendorX"
	terminalModel           = "modelY"
	terminalSoftwareVersion = "versionZ"
)

func BuildRequest(capability entitlements.Capability) entitlements.Request {
	return entitlements.Request{
		ConfigurationVersion:    entitlements.DefaultConfigurationVersion,
		EntitlementVersion:      entitlements.DefaultEntitlementVersion,
		TerminalVendor:          terminalVendor,
		TerminalModel:           terminalModel,
		TerminalSoftwareVersion: terminalSoftwareVersion,
		AcceptContentType:       entitlements.AcceptContentTypeJSON,
		NetworkIdentifier:       capability.String(),
	}
}
