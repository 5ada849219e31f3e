package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP extracts the client address from proxy headers,
// falling back to the connection remote address.
func ReadUserIP(r *http.Request) (string, error) {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// first hop is the original client
		clientAddr := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if net.ParseIP(clientAddr) != nil {
			return clientAddr, nil
		}
	}

	if realIp := r.Header.Get("X-Real-Ip"); realIp != "" {
		if net.ParseIP(realIp) != nil {
			return realIp, nil
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port
		host = r.RemoteAddr
	}
	if net.ParseIP(host) == nil {
		return "", fmt.Errorf("remote addr %q is not a valid ip", r.RemoteAddr)
	}

	return host, nil
}
