package mw

import (
	"net"
	"net/http"
	"net/netip"

	"github.com/thisisamank/thisisamank.in/internal/logger"
)

// LocalOnly rejects requests whose peer address is not a loopback or
// private network address. Forwarding headers are ignored.
func LocalOnly(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isLocal(r.RemoteAddr) {
				log.Debug("rejected non-local request",
					logger.String("remote_ip", r.RemoteAddr),
					logger.String("path", r.URL.Path))
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isLocal(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsLoopback() || addr.IsPrivate()
}
