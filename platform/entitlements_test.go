package platform

import (
	"app/base/types/entitlements"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMockQuery(t *testing.T) {
	mock := NewEntitlementMock(defaultEntitlementResponse)
	router := Router(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, EntitlementPath+"?app=premium_network_slice&vers=0", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, defaultEntitlementResponse, w.Body.String())
	require.Equal(t, 1, len(mock.Queries()))
	assert.Equal(t, "premium_network_slice", mock.Queries()[0].Get("app"))
}

func TestMockStatus(t *testing.T) {
	mock := NewEntitlementMock("")
	mock.SetResponse(http.StatusBadGateway, `{"error":"down"}`)
	router := Router(mock)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, EntitlementPath, nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, `{"error":"down"}`, w.Body.String())
}

func TestMockEapAkaRound(t *testing.T) {
	mock := NewEntitlementMock(defaultEntitlementResponse)
	mock.RequireEapAka("challenge", entitlements.DefaultEapAkaResponse)
	router := Router(mock)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, EntitlementPath, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var packet entitlements.EapRelayPacket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packet))
	assert.Equal(t, "challenge", packet.Packet)
	cookies := w.Result().Cookies()
	require.Equal(t, 1, len(cookies))

	// response without session
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, EntitlementPath,
		strings.NewReader(`{"eap-relay-packet":"Default EAP AKA response"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// wrong response is challenged again
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, EntitlementPath, strings.NewReader(`{"eap-relay-packet":"wrong"}`))
	req.AddCookie(cookies[0])
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), entitlements.EapRelayPacketKey)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, EntitlementPath,
		strings.NewReader(`{"eap-relay-packet":"Default EAP AKA response"}`))
	req.AddCookie(cookies[0])
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, defaultEntitlementResponse, w.Body.String())
}

func TestMockInvalidEapPacket(t *testing.T) {
	mock := NewEntitlementMock(defaultEntitlementResponse)
	mock.RequireEapAka("challenge", entitlements.DefaultEapAkaResponse)
	router := Router(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, EntitlementPath, strings.NewReader(`not json`))
	req.AddCookie(&http.Cookie{Name: eapSessionCookie, Value: "challenged"})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
