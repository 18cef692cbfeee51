package service

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// validateLocalRequest checks the Host and Origin headers against the
// allowed hosts to block DNS rebinding from remote pages.
func (t *HTTPTransport) validateLocalRequest(r *http.Request) error {
	if r == nil {
		return fmt.Errorf("invalid request")
	}
	if !t.isAllowedHostHeader(r.Host) {
		return fmt.Errorf("invalid host")
	}

	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return nil
	}
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid origin")
	}
	if !t.isAllowedHostHeader(parsed.Host) {
		return fmt.Errorf("invalid origin")
	}
	return nil
}

// isAllowedHostHeader accepts loopback hosts plus any configured host.
func (t *HTTPTransport) isAllowedHostHeader(host string) bool {
	resolved, ok := hostname(host)
	if !ok {
		return false
	}
	if isLoopbackHost(resolved) {
		return true
	}
	_, ok = t.allowedHosts[strings.ToLower(resolved)]
	return ok
}

func isLoopbackHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}

func parseAllowedHosts(hosts []string) map[string]struct{} {
	result := make(map[string]struct{}, len(hosts))
	for _, entry := range hosts {
		trimmed := strings.ToLower(strings.TrimSpace(entry))
		if trimmed != "" {
			result[trimmed] = struct{}{}
		}
	}
	return result
}

// hostname strips the port and IPv6 brackets from a Host or Origin value.
func hostname(host string) (string, bool) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", false
	}
	if strings.HasPrefix(host, "[") {
		if split, _, err := net.SplitHostPort(host); err == nil {
			return split, true
		}
		if strings.HasSuffix(host, "]") {
			return strings.Trim(host, "[]"), true
		}
		return "", false
	}
	// A bare IPv6 address carries several colons and no port.
	if strings.Count(host, ":") > 1 {
		return host, true
	}
	if strings.Contains(host, ":") {
		split, _, err := net.SplitHostPort(host)
		if err != nil {
			return "", false
		}
		return split, true
	}
	return host, true
}
