// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package security

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	// ErrInvalidScheme is returned for a scheme outside the allow-list, or
	// for the always-rejected file scheme.
	ErrInvalidScheme = errors.New("security: InvalidScheme")
	// ErrPrivateIP is returned when an http/https URI's host resolves to a
	// private, loopback, or localhost address.
	ErrPrivateIP = errors.New("security: PrivateIp")
	// ErrDataURITooLarge is returned when a data: URI's decoded payload
	// exceeds the configured size ceiling.
	ErrDataURITooLarge = errors.New("security: DataUriTooLarge")
)

// DefaultAllowedSchemes is the scheme allow-list applied when a Policy does
// not set its own, per spec.md §4.4.
var DefaultAllowedSchemes = map[string]bool{
	"http": true, "https": true, "mailto": true, "tel": true, "urn": true, "data": true,
}

// DefaultMaxDataURISize is the data: URI payload ceiling applied when a
// Policy leaves MaxDataURISize unset (1 MiB, per spec.md §6).
const DefaultMaxDataURISize = 1 << 20

// privateBlocks are the CIDR ranges spec.md §4.4 calls out by name.
var privateBlocks = mustParseCIDRs(
	"127.0.0.0/8",
	"10.0.0.0/8",
	"192.168.0.0/16",
	"172.16.0.0/12",
)

func mustParseCIDRs(cidrs ...string) []*net.IPNet {
	out := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, err := net.ParseCIDR(c)
		if err != nil {
			panic(err)
		}
		out = append(out, n)
	}
	return out
}

// Policy is the URI validation configuration: an allow-list of schemes and a
// data: URI payload cap.
type Policy struct {
	AllowedSchemes map[string]bool
	MaxDataURISize int
}

// DefaultPolicy returns the spec.md §6 default URI policy.
func DefaultPolicy() Policy {
	return Policy{AllowedSchemes: DefaultAllowedSchemes, MaxDataURISize: DefaultMaxDataURISize}
}

// ValidateURI checks raw against the policy: scheme allow-listing (file
// always rejected), private-IP/localhost rejection for http/https, and a
// size ceiling for data: URIs.
func (p Policy) ValidateURI(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}
	scheme := strings.ToLower(u.Scheme)

	if scheme == "file" {
		return fmt.Errorf("%w: file", ErrInvalidScheme)
	}

	allowed := p.AllowedSchemes
	if allowed == nil {
		allowed = DefaultAllowedSchemes
	}
	if !allowed[scheme] {
		return fmt.Errorf("%w: %s", ErrInvalidScheme, scheme)
	}

	switch scheme {
	case "http", "https":
		if err := checkPrivateHost(u.Hostname()); err != nil {
			return err
		}
	case "data":
		if err := p.checkDataURISize(raw); err != nil {
			return err
		}
	}
	return nil
}

func checkPrivateHost(host string) error {
	if host == "" {
		return nil
	}
	if strings.EqualFold(host, "localhost") {
		return fmt.Errorf("%w: localhost", ErrPrivateIP)
	}
	ip := net.ParseIP(host)
	if ip == nil {
		// Not a literal IP; hostname resolution is out of scope for a pure
		// syntactic validator (spec.md §4.4 names literal address ranges).
		return nil
	}
	for _, block := range privateBlocks {
		if block.Contains(ip) {
			return fmt.Errorf("%w: %s", ErrPrivateIP, ip)
		}
	}
	return nil
}

// checkDataURISize measures a data: URI's payload length (the decoded length
// of a ;base64 body, the raw body length otherwise; percent-escapes are not
// decoded) and rejects it if it exceeds the configured ceiling.
func (p Policy) checkDataURISize(raw string) error {
	maxSize := p.MaxDataURISize
	if maxSize == 0 {
		maxSize = DefaultMaxDataURISize
	}
	_, body, found := strings.Cut(raw, ",")
	if !found {
		return nil
	}
	meta, _, _ := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	size := len(body)
	if strings.Contains(meta, ";base64") {
		size = base64.StdEncoding.DecodedLen(len(body))
	}
	if size > maxSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrDataURITooLarge, size, maxSize)
	}
	return nil
}
