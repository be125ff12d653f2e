package entitlements

// Application id of the premium network slice entitlement, also the top level key of the server response
const AppPremiumNetworkSlice = "premium_network_slice"

// Carrier config key holding entitlement server url
const KeyEntitlementServerURL = "imsserviceentitlement.entitlement_server_url_string"

const (
	AcceptContentTypeJSON       = "application/json"
	DefaultEntitlementVersion   = "2.0"
	DefaultConfigurationVersion = 0
)

// Entitlement status codes asserted by the server
const (
	EntitlementStatusDisabled     = 0
	EntitlementStatusEnabled      = 1
	EntitlementStatusIncompatible = 2
	EntitlementStatusProvisioning = 3
)

// Provision status codes asserted by the server
const (
	ProvisionStatusNotProvisioned = 0
	ProvisionStatusProvisioned    = 1
	ProvisionStatusNotRequired    = 2
	ProvisionStatusInProgress     = 3
)

// Request describes one entitlement query, built fresh per check
type Request struct {
	ConfigurationVersion    int    `json:"vers"`
	EntitlementVersion      string `json:"entitlement_version"`
	TerminalVendor          string `json:"terminal_vendor"`
	TerminalModel           string `json:"terminal_model"`
	TerminalSoftwareVersion string `json:"terminal_sw_version"`
	AcceptContentType       string `json:"-"`
	NetworkIdentifier       string `json:"network_identifier"`
}

// Response is the typed result of an entitlement check, zero values mean unset
type Response struct {
	EntitlementStatus int    `json:"entitlement_status"`
	ProvisionStatus   int    `json:"provision_status"`
	ProvisionTimeLeft int    `json:"provision_time_left,omitempty"`
	ServiceFlowURL    string `json:"service_flow_url"`
}

func (r *Response) IsEntitled() bool {
	return r != nil && r.EntitlementStatus == EntitlementStatusEnabled
}

func (r *Response) IsProvisioned() bool {
	return r != nil && (r.ProvisionStatus == ProvisionStatusProvisioned ||
		r.ProvisionStatus == ProvisionStatusNotRequired)
}

// EAP-AKA relay as used by the entitlement server to challenge the device
const (
	EapRelayPacketKey       = "eap-relay-packet"
	ContentTypeEapRelayJSON = "application/vnd.gsma.eap-relay.v1.0+json"
	// Reply sent to any challenge when EAP-AKA authentication is bypassed
	DefaultEapAkaResponse   = "Default EAP AKA response"
)

type EapRelayPacket struct {
	Packet string `json:"eap-relay-packet"`
}
