package entitlement_client

import (
	"app/base/api"
	"app/base/types/entitlements"
	"app/base/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

var (
	ErrNoServerURL  = errors.New("entitlement server url is not configured")
	ErrServerStatus = errors.New("entitlement server returned unexpected status")
	ErrAuthRejected = errors.New("entitlement server rejected EAP-AKA response")
)

type Config struct {
	ServerURL string
	// Accept any EAP-AKA challenge and reply with fixed response, for testing only
	BypassEapAkaAuth bool
	Debug            bool
	Timeout          time.Duration
}

// Client queries carrier entitlement server, one HTTP exchange plus at most one EAP-AKA round per query
type Client struct {
	serverURL string
	auth      Authenticator
	api       api.Client
}

func NewClient(cfg Config) *Client {
	var auth Authenticator = UnsupportedAuthenticator{}
	if cfg.BypassEapAkaAuth {
		utils.LogWarn("EAP-AKA authentication bypass enabled")
		auth = BypassAuthenticator{Response: entitlements.DefaultEapAkaResponse}
	}
	return NewClientWithAuthenticator(cfg, auth)
}

func NewClientWithAuthenticator(cfg Config, auth Authenticator) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if err := http2.ConfigureTransport(transport); err != nil {
		utils.LogWarn("err", err.Error(), "unable to enable HTTP/2 for entitlement client")
	}
	// cookiejar.New never fails without options
	jar, _ := cookiejar.New(nil)

	return &Client{
		serverURL: cfg.ServerURL,
		auth:      auth,
		api: api.Client{
			HTTPClient:     &http.Client{Transport: transport, Jar: jar, Timeout: cfg.Timeout},
			Debug:          cfg.Debug,
			DefaultHeaders: map[string]string{"Accept": entitlements.AcceptContentTypeJSON},
		},
	}
}

// QueryEntitlementStatus returns raw response body for the given application, nil when server sent no body
func (c *Client) QueryEntitlementStatus(ctx context.Context, app string,
	request entitlements.Request) (*string, error) {
	if c.serverURL == "" {
		return nil, ErrNoServerURL
	}
	queryURL, err := buildQueryURL(c.serverURL, app, request)
	if err != nil {
		return nil, err
	}
	headers := acceptHeader(request.AcceptContentType)

	resp, body, err := c.api.Request(ctx, http.MethodGet, queryURL, nil, headers)
	if err != nil {
		return nil, errors.Wrap(err, "entitlement query failed")
	}
	if err = checkStatus(resp); err != nil {
		return nil, err
	}

	if challenge, ok := eapChallenge(body); ok {
		body, err = c.authenticate(ctx, challenge, request.AcceptContentType)
		if err != nil {
			return nil, err
		}
	}

	if len(body) == 0 {
		return nil, nil
	}
	return utils.PtrString(string(body)), nil
}

func (c *Client) authenticate(ctx context.Context, challenge, accept string) ([]byte, error) {
	answer, err := c.auth.Respond(challenge)
	if err != nil {
		return nil, errors.Wrap(err, "EAP-AKA challenge failed")
	}
	headers := acceptHeader(accept)
	headers["Content-Type"] = entitlements.ContentTypeEapRelayJSON
	packet := entitlements.EapRelayPacket{Packet: answer}

	resp, body, err := c.api.Request(ctx, http.MethodPost, c.serverURL, &packet, headers)
	if err != nil {
		return nil, errors.Wrap(err, "EAP-AKA response sending failed")
	}
	if err = checkStatus(resp); err != nil {
		return nil, err
	}
	if _, again := eapChallenge(body); again {
		return nil, ErrAuthRejected
	}
	return body, nil
}

// empty accept type keeps client default
func acceptHeader(accept string) map[string]string {
	headers := map[string]string{}
	if accept != "" {
		headers["Accept"] = accept
	}
	return headers
}

func buildQueryURL(serverURL, app string, request entitlements.Request) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid entitlement server url")
	}
	query := u.Query()
	query.Set("vers", strconv.Itoa(request.ConfigurationVersion))
	query.Set("entitlement_version", request.EntitlementVersion)
	query.Set("terminal_vendor", request.TerminalVendor)
	query.Set("terminal_model", request.TerminalModel)
	query.Set("terminal_sw_version", request.TerminalSoftwareVersion)
	query.Set("app", app)
	if request.NetworkIdentifier != "" {
		query.Set("network_identifier", request.NetworkIdentifier)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func checkStatus(resp *http.Response) error {
	code := utils.TryGetStatusCode(resp)
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return errors.Wrap(ErrServerStatus, "entitlement query failed"+utils.TryGetResponseDetails(resp))
	}
	return nil
}

// body carrying eap-relay-packet is a challenge, anything else is entitlement data
func eapChallenge(body []byte) (string, bool) {
	var packet entitlements.EapRelayPacket
	if err := json.Unmarshal(body, &packet); err != nil {
		return "", false
	}
	return packet.Packet, packet.Packet != ""
}
