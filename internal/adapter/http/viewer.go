package httpadapter

import (
	"net"
	"net/http"
	"net/netip"

	"github.com/mssola/user_agent"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

// viewerFromRequest derives the viewer identity from the connection and the
// User-Agent header. RemoteAddr has already been rewritten by RealIP when
// the proxy headers are trusted.
func viewerFromRequest(r *http.Request) port.ViewerContext {
	ua := r.UserAgent()
	vc := port.ViewerContext{
		Viewer: domain.Viewer{IP: clientIP(r.RemoteAddr), UserAgent: ua},
	}
	if ua != "" {
		parsed := user_agent.New(ua)
		vc.Browser, _ = parsed.Browser()
		vc.Platform = parsed.OS()
		vc.Mobile = parsed.Mobile()
	}
	return vc
}

// clientIP strips the port and canonicalises the address so that, for
// example, an IPv4-mapped IPv6 address and its IPv4 form count as the same
// viewer.
func clientIP(remoteAddr string) string {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return host
	}
	return addr.Unmap().WithZone("").String()
}
