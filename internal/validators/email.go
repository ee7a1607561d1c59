package validators

import (
	"net"
	"strings"
)

// Resolver hooks, swappable in tests so no DNS traffic is needed.
var (
	lookupMX = net.LookupMX
	lookupIP = net.LookupIP
)

// IsEmailDomainValid checks that the domain behind an email address actually
// resolves, so typos like "gmial.com" are caught before an owner account is
// created. MX records are checked first; a bare A/AAAA record is accepted as
// fallback since such hosts may still receive mail. Syntax is validated
// earlier by the request binding.
func IsEmailDomainValid(email string) bool {
	domain := domainPart(email)
	if domain == "" {
		return false
	}

	if mx, err := lookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := lookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

func domainPart(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}
