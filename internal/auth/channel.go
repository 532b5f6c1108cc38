package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MobileAppHeader marks requests coming from the mobile app.
const MobileAppHeader = "x-mobile-app"

// Channel is how a client transports its token.
type Channel string

const (
	ChannelWeb    Channel = "web"    // HttpOnly cookie
	ChannelMobile Channel = "mobile" // Authorization: Bearer header
)

// DetectChannel classifies a request. Only the exact, case-sensitive value
// "true" selects the mobile channel.
func DetectChannel(r *http.Request) Channel {
	if r.Header.Get(MobileAppHeader) == "true" {
		return ChannelMobile
	}
	return ChannelWeb
}

// IsMobileRequest reports whether the request uses the bearer-token channel.
func IsMobileRequest(c *gin.Context) bool {
	return DetectChannel(c.Request) == ChannelMobile
}
