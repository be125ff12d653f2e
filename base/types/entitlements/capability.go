package entitlements

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Capability identifies premium network feature being checked
type Capability int

const (
	CapabilityPrioritizeLatency Capability = 34
)

var capabilityNames = map[Capability]string{
	CapabilityPrioritizeLatency: "PRIORITIZE_LATENCY",
}

// String returns network identifier form of the capability
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (%d)", int(c))
}

// ParseCapability accepts capability name or its numeric value
func ParseCapability(value string) (Capability, error) {
	for capability, name := range capabilityNames {
		if name == value {
			return capability, nil
		}
	}
	if num, err := strconv.Atoi(value); err == nil {
		if _, ok := capabilityNames[Capability(num)]; ok {
			return Capability(num), nil
		}
	}
	return 0, errors.Errorf("unknown premium capability: %q", value)
}
