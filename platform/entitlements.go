package platform

import (
	"app/base/types/entitlements"
	"app/base/utils"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
)

const EntitlementPath = "/api/entitlement/v1"

const eapSessionCookie = "eap_session"

var defaultEntitlementResponse = `{
	"premium_network_slice": {
		"EntitlementStatus": "1",
		"ProvisionStatus": "1"
	}
}`

// EntitlementMock serves configurable carrier entitlement responses
type EntitlementMock struct {
	lock        sync.Mutex
	status      int
	body        string
	challenge   string
	expectedEap string
	queries     []url.Values
}

func NewEntitlementMock(body string) *EntitlementMock {
	return &EntitlementMock{status: http.StatusOK, body: body}
}

func (m *EntitlementMock) SetResponse(status int, body string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.status = status
	m.body = body
}

// RequireEapAka makes the first query answered by EAP-AKA challenge
func (m *EntitlementMock) RequireEapAka(challenge, expectedResponse string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.challenge = challenge
	m.expectedEap = expectedResponse
}

// Queries returns query parameters of all received entitlement queries
func (m *EntitlementMock) Queries() []url.Values {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]url.Values{}, m.queries...)
}

func (m *EntitlementMock) queryHandler(c *gin.Context) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.queries = append(m.queries, c.Request.URL.Query())
	utils.LogInfo("app", c.Query("app"), "network_identifier", c.Query("network_identifier"),
		"Mocking entitlement query")

	if m.challenge != "" {
		if _, err := c.Cookie(eapSessionCookie); err != nil {
			c.SetCookie(eapSessionCookie, "challenged", 0, "/", "", false, true)
			c.JSON(http.StatusOK, gin.H{entitlements.EapRelayPacketKey: m.challenge})
			return
		}
	}
	m.writeBody(c)
}

func (m *EntitlementMock) eapResponseHandler(c *gin.Context) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, err := c.Cookie(eapSessionCookie); err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Error: "missing EAP session"})
		return
	}
	var packet entitlements.EapRelayPacket
	if err := c.ShouldBindJSON(&packet); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	if packet.Packet != m.expectedEap {
		utils.LogWarn("packet", packet.Packet, "Mocking rejected EAP-AKA response")
		c.JSON(http.StatusOK, gin.H{entitlements.EapRelayPacketKey: m.challenge})
		return
	}
	m.writeBody(c)
}

func (m *EntitlementMock) writeBody(c *gin.Context) {
	c.Data(m.status, gin.MIMEJSON, []byte(m.body))
}

func initEntitlements(app *gin.Engine, mock *EntitlementMock) {
	app.GET(EntitlementPath, mock.queryHandler)
	app.POST(EntitlementPath, mock.eapResponseHandler)
}
