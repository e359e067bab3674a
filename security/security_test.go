// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthGuardAllowsExactlyMax(t *testing.T) {
	g := NewDepthGuard(3)
	for i := 0; i < 3; i++ {
		assert.NoError(t, g.Push())
	}
	assert.ErrorIs(t, g.Push(), ErrDepthExceeded)
}

func TestDepthGuardPopAllowsReuse(t *testing.T) {
	g := NewDepthGuard(1)
	assert.NoError(t, g.Push())
	assert.ErrorIs(t, g.Push(), ErrDepthExceeded)
	g.Pop()
	assert.NoError(t, g.Push())
}

func TestValidateURIFileRejected(t *testing.T) {
	p := DefaultPolicy()
	assert.ErrorIs(t, p.ValidateURI("file:///etc/passwd"), ErrInvalidScheme)
}

func TestValidateURIUnknownSchemeRejected(t *testing.T) {
	p := DefaultPolicy()
	assert.ErrorIs(t, p.ValidateURI("ftp://example.com/a"), ErrInvalidScheme)
}

func TestValidateURIAllowedSchemesPass(t *testing.T) {
	p := DefaultPolicy()
	for _, uri := range []string{
		"http://example.com", "https://example.com", "mailto:a@example.com",
		"tel:+15551234567", "urn:uuid:abc", "data:text/plain;base64,aGVsbG8=",
	} {
		assert.NoError(t, p.ValidateURI(uri), uri)
	}
}

func TestValidateURIPrivateIPRejected(t *testing.T) {
	p := DefaultPolicy()
	for _, uri := range []string{
		"http://127.0.0.1/", "http://10.1.2.3/", "http://192.168.1.1/",
		"http://172.16.0.1/", "http://localhost/",
	} {
		assert.ErrorIs(t, p.ValidateURI(uri), ErrPrivateIP, uri)
	}
}

func TestValidateURIPublicIPAllowed(t *testing.T) {
	p := DefaultPolicy()
	assert.NoError(t, p.ValidateURI("http://8.8.8.8/"))
}

func TestValidateURIDataTooLarge(t *testing.T) {
	p := Policy{AllowedSchemes: DefaultAllowedSchemes, MaxDataURISize: 4}
	assert.ErrorIs(t, p.ValidateURI("data:text/plain;base64,aGVsbG8="), ErrDataURITooLarge)
}

func TestCheckXXE(t *testing.T) {
	assert.NoError(t, CheckXXE([]byte("BEGIN:VCALENDAR\r\n")))
	assert.ErrorIs(t, CheckXXE([]byte("<!ENTITY xxe SYSTEM \"file:///etc/passwd\">")), ErrXXEAttempt)
}

func TestSanitizeText(t *testing.T) {
	in := "a\x00b\x01c\td\ne\rf"
	got := SanitizeText(in)
	assert.Equal(t, "ab\\x01c\td\ne\rf", got)
}

func TestSanitizeTextPreservesUTF8(t *testing.T) {
	in := "café 日本語"
	assert.Equal(t, in, SanitizeText(in))
}
