// Package netcheck provides a fast connectivity probe so AI features can
// short-circuit to their offline behavior instead of waiting out a timeout.
package netcheck

import (
	"net"
	"time"
)

const (
	probeAddr    = "dns.google:443"
	probeTimeout = 2 * time.Second
)

// Online reports whether an outbound TCP connection can be established.
// A false result is advisory; the caller still handles request failures.
func Online() bool {
	conn, err := net.DialTimeout("tcp", probeAddr, probeTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
