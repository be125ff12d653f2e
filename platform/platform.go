package platform

import (
	"app/base"
	"app/base/types/entitlements"
	"app/base/utils"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// Router creates mocked carrier entitlement server
func Router(mock *EntitlementMock) *gin.Engine {
	app := gin.New()
	app.Use(gin.Recovery())
	app.Use(requestLogger())
	app.Use(gzip.Gzip(gzip.DefaultCompression))
	ginprometheus.NewPrometheus("slice_purchase_platform").Use(app)
	initEntitlements(app, mock)
	return app
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.LogDebug("method", c.Request.Method, "url", c.Request.URL.String(),
			"status", c.Writer.Status(), "duration_ms", time.Since(start).Milliseconds(), "request")
	}
}

func RunPlatformMock() {
	utils.Log().Info("Platform mock starting")
	mock := NewEntitlementMock(utils.Getenv("MOCK_ENTITLEMENT_RESPONSE", defaultEntitlementResponse))
	if challenge := utils.Getenv("MOCK_EAP_CHALLENGE", ""); challenge != "" {
		mock.RequireEapAka(challenge, entitlements.DefaultEapAkaResponse)
	}

	err := utils.RunServer(base.Context, Router(mock), utils.GetIntEnvOrDefault("PLATFORM_PORT", 9001))
	if err != nil {
		panic(err)
	}
}
