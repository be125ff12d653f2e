package entitlement_client

import (
	"app/base/core"
	"app/base/types/entitlements"
	"app/platform"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sliceBody = `{"premium_network_slice":{"EntitlementStatus":"1","ProvisionStatus":"2"}}`

func init() {
	gin.SetMode(gin.TestMode)
	core.SetupTestEnvironment()
}

func testRequest() entitlements.Request {
	return entitlements.Request{
		ConfigurationVersion:    entitlements.DefaultConfigurationVersion,
		EntitlementVersion:      entitlements.DefaultEntitlementVersion,
		TerminalVendor:          "vendorX",
		TerminalModel:           "modelY",
		TerminalSoftwareVersion: "versionZ",
		AcceptContentType:       entitlements.AcceptContentTypeJSON,
		NetworkIdentifier:       entitlements.CapabilityPrioritizeLatency.String(),
	}
}

func startMock(t *testing.T, mock *platform.EntitlementMock) string {
	srv := httptest.NewServer(platform.Router(mock))
	t.Cleanup(srv.Close)
	return srv.URL + platform.EntitlementPath
}

func TestQueryEntitlementStatus(t *testing.T) {
	mock := platform.NewEntitlementMock(sliceBody)
	client := NewClient(Config{ServerURL: startMock(t, mock), Timeout: 5 * time.Second})

	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	require.NoError(t, err)
	require.NotNil(t, body)
	assert.Equal(t, sliceBody, *body)

	queries := mock.Queries()
	require.Equal(t, 1, len(queries))
	assert.Equal(t, "0", queries[0].Get("vers"))
	assert.Equal(t, "2.0", queries[0].Get("entitlement_version"))
	assert.Equal(t, "vendorX", queries[0].Get("terminal_vendor"))
	assert.Equal(t, "modelY", queries[0].Get("terminal_model"))
	assert.Equal(t, "versionZ", queries[0].Get("terminal_sw_version"))
	assert.Equal(t, entitlements.AppPremiumNetworkSlice, queries[0].Get("app"))
	assert.Equal(t, "PRIORITIZE_LATENCY", queries[0].Get("network_identifier"))
}

func TestQueryEntitlementStatusDebug(t *testing.T) {
	mock := platform.NewEntitlementMock(sliceBody)
	client := NewClient(Config{ServerURL: startMock(t, mock), Debug: true})

	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	require.NoError(t, err)
	assert.Equal(t, sliceBody, *body)
}

func TestQueryEntitlementStatusEmptyBody(t *testing.T) {
	mock := platform.NewEntitlementMock("")
	client := NewClient(Config{ServerURL: startMock(t, mock)})

	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	assert.NoError(t, err)
	assert.Nil(t, body)
}

func TestQueryEntitlementStatusServerError(t *testing.T) {
	mock := platform.NewEntitlementMock(sliceBody)
	mock.SetResponse(http.StatusServiceUnavailable, `{"error":"maintenance"}`)
	client := NewClient(Config{ServerURL: startMock(t, mock)})

	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	assert.ErrorIs(t, err, ErrServerStatus)
	assert.Contains(t, err.Error(), "status code: 503")
	assert.Nil(t, body)
}

func TestQueryEntitlementStatusNoServerURL(t *testing.T) {
	client := NewClient(Config{})
	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	assert.ErrorIs(t, err, ErrNoServerURL)
	assert.Nil(t, body)
}

func TestQueryEntitlementStatusUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	serverURL := srv.URL
	srv.Close()

	client := NewClient(Config{ServerURL: serverURL, Timeout: time.Second})
	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	assert.Error(t, err)
	assert.Nil(t, body)
}

func TestQueryEntitlementStatusBypassEapAka(t *testing.T) {
	mock := platform.NewEntitlementMock(sliceBody)
	mock.RequireEapAka("challenge-packet", entitlements.DefaultEapAkaResponse)
	client := NewClient(Config{ServerURL: startMock(t, mock), BypassEapAkaAuth: true})

	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	require.NoError(t, err)
	require.NotNil(t, body)
	assert.Equal(t, sliceBody, *body)
	assert.Equal(t, 1, len(mock.Queries()))
}

func TestQueryEntitlementStatusEapAkaUnsupported(t *testing.T) {
	mock := platform.NewEntitlementMock(sliceBody)
	mock.RequireEapAka("challenge-packet", entitlements.DefaultEapAkaResponse)
	client := NewClient(Config{ServerURL: startMock(t, mock)})

	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	assert.ErrorIs(t, err, ErrEapAkaUnsupported)
	assert.Nil(t, body)
}

func TestQueryEntitlementStatusEapAkaRejected(t *testing.T) {
	mock := platform.NewEntitlementMock(sliceBody)
	mock.RequireEapAka("challenge-packet", "expected-response")
	client := NewClientWithAuthenticator(Config{ServerURL: startMock(t, mock)},
		BypassAuthenticator{Response: "wrong-response"})

	body, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, testRequest())
	assert.ErrorIs(t, err, ErrAuthRejected)
	assert.Nil(t, body)
}

func TestBuildQueryURLKeepsServerQuery(t *testing.T) {
	queryURL, err := buildQueryURL("https://ent.example.com/path?carrier=1", "app_id", testRequest())
	require.NoError(t, err)
	assert.Contains(t, queryURL, "carrier=1")
	assert.Contains(t, queryURL, "app=app_id")
	assert.Contains(t, queryURL, "https://ent.example.com/path?")

	_, err = buildQueryURL("://bad", "app_id", testRequest())
	assert.Error(t, err)
}

func TestEapChallenge(t *testing.T) {
	challenge, ok := eapChallenge([]byte(`{"eap-relay-packet":"abc"}`))
	assert.True(t, ok)
	assert.Equal(t, "abc", challenge)

	_, ok = eapChallenge([]byte(sliceBody))
	assert.False(t, ok)
	_, ok = eapChallenge([]byte("not json"))
	assert.False(t, ok)
	_, ok = eapChallenge(nil)
	assert.False(t, ok)
}

func TestQueryEntitlementStatusAcceptHeader(t *testing.T) {
	var accepts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accepts = append(accepts, r.Header.Get("Accept"))
		_, _ = w.Write([]byte(sliceBody))
	}))
	defer srv.Close()
	client := NewClient(Config{ServerURL: srv.URL})

	request := testRequest()
	request.AcceptContentType = ""
	_, err := client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, request)
	require.NoError(t, err)

	request.AcceptContentType = "application/vnd.gsma.ts43+json"
	_, err = client.QueryEntitlementStatus(context.Background(), entitlements.AppPremiumNetworkSlice, request)
	require.NoError(t, err)

	assert.Equal(t, []string{entitlements.AcceptContentTypeJSON, "application/vnd.gsma.ts43+json"}, accepts)
}
