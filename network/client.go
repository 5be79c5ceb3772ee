// Package network provides the HTTP context shared by the availability request and manifest fetches.
package network

import (
	"net/http"
	"time"

	"github.com/cbstream/cbstream/key"
	"github.com/spf13/viper"
)

// Context is the HTTP environment inherited by outbound requests: the client that
// executes them and the User-Agent they advertise.
type Context struct {
	Client    *http.Client
	UserAgent string
}

// FromConfig builds a Context from the network.* settings.
func FromConfig() *Context {
	timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
	return &Context{
		Client:    NewClient(timeout, viper.GetBool(key.NetworkTLSFingerprint)),
		UserAgent: viper.GetString(key.NetworkUserAgent),
	}
}

// NewClient returns an HTTP client with the given timeout. When fingerprint is set the
// client dials with a Chrome TLS ClientHello.
func NewClient(timeout time.Duration, fingerprint bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if fingerprint {
		transport = &fingerprintTransport{}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
