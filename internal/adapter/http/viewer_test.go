package httpadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := map[string]string{
		"192.0.2.1:1234":        "192.0.2.1",
		"[::ffff:192.0.2.1]:80": "192.0.2.1",
		"[2001:db8::1]:443":     "2001:db8::1",
		"203.0.113.7":           "203.0.113.7",
		"[fe80::1%eth0]:8080":   "fe80::1",
		"not-an-ip":             "not-an-ip",
	}
	for in, want := range tests {
		assert.Equal(t, want, clientIP(in), in)
	}
}
