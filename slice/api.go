package slice

import (
	"app/base/anomaly"
	"app/base/entitlement_client"
	"app/base/types/entitlements"
	"app/base/utils"
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Anomaly id reported when unexpected error is received during entitlement check
var AnomalyEntitlementCheckUnexpectedError = uuid.MustParse("f2b0661a-9114-4b1b-9add-a8d338f9c054")

const (
	msgTransportError = "checkEntitlementStatus failed with entitlement transport error"
	msgMalformedBody  = "checkEntitlementStatus failed with malformed JSON response"
	msgNumberFormat   = "checkEntitlementStatus failed with non-numeric status value"
)

// Transport executes entitlement query, body is nil when server returned none
type Transport interface {
	QueryEntitlementStatus(ctx context.Context, app string, request entitlements.Request) (*string, error)
}

// EntitlementAPI checks premium network slice entitlement with carrier entitlement server.
// It holds only immutable configuration and can be used concurrently.
type EntitlementAPI struct {
	transport             Transport
	reporter              anomaly.Reporter
	correctedFieldMapping bool
}

func NewEntitlementAPI(cfg Config, reporter anomaly.Reporter) *EntitlementAPI {
	client := entitlement_client.NewClient(entitlement_client.Config{
		ServerURL:        cfg.ServerURL,
		BypassEapAkaAuth: cfg.BypassEapAkaAuth,
		Debug:            cfg.Debug,
		Timeout:          cfg.Timeout,
	})
	return NewEntitlementAPIWithTransport(cfg, client, reporter)
}

func NewEntitlementAPIWithTransport(cfg Config, transport Transport, reporter anomaly.Reporter) *EntitlementAPI {
	if reporter == nil {
		reporter = anomaly.Noop{}
	}
	return &EntitlementAPI{transport: transport, reporter: reporter, correctedFieldMapping: cfg.CorrectedFieldMapping}
}

// CheckEntitlementStatus returns entitlement check result from the carrier server, or nil on transport
// failure or missing response. Blocking network call, exactly one request attempt is made.
// Nil result means unknown status, callers must not treat it as not entitled.
func (a *EntitlementAPI) CheckEntitlementStatus(ctx context.Context,
	capability entitlements.Capability) *entitlements.Response {
	utils.LogDebug("capability", capability.String(), "checkEntitlementStatus")
	request := BuildRequest(capability)

	body, err := a.transport.QueryEntitlementStatus(ctx, entitlements.AppPremiumNetworkSlice, request)
	if err != nil {
		utils.LogError("err", err.Error(), "capability", capability.String(), "queryEntitlementStatus failed")
		a.reportAnomaly(msgTransportError)
		checksCnt.WithLabelValues(resultTransportError).Inc()
		return nil
	}

	result, outcome := a.parseResponse(body)
	checksCnt.WithLabelValues(outcome).Inc()
	return result
}

// ParseResponse interprets raw entitlement response body. Malformed data yields default or partially
// populated result and anomaly report, only nil body yields nil.
func (a *EntitlementAPI) ParseResponse(body *string) *entitlements.Response {
	result, _ := a.parseResponse(body)
	return result
}

func (a *EntitlementAPI) parseResponse(body *string) (*entitlements.Response, string) {
	if body == nil {
		return nil, resultNoBody
	}

	utils.LogTrace("body", *body, "entitlement response")
	result, err := decodeResponse(*body, a.correctedFieldMapping)
	switch {
	case err == nil:
		return result, resultOK
	case errors.Is(err, ErrNumberFormat):
		utils.LogError("err", err.Error(), "entitlement response parsing failed")
		a.reportAnomaly(msgNumberFormat)
		return result, resultNumberFormat
	default:
		utils.LogError("err", err.Error(), "entitlement response parsing failed")
		a.reportAnomaly(msgMalformedBody)
		return result, resultMalformedBody
	}
}

func (a *EntitlementAPI) reportAnomaly(message string) {
	anomaly.Safe(a.reporter, AnomalyEntitlementCheckUnexpectedError, message)
}
