package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"sync"
	"sync/atomic"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

var (
	h2Transport     *http2.Transport
	h2TransportOnce sync.Once
)

func getH2Transport() *http2.Transport {
	h2TransportOnce.Do(func() {
		h2Transport = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		}
	})
	return h2Transport
}

var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLS(ctx, network, addr, []string{"http/1.1"})
	},
}

// fingerprintTransport sends requests over a Chrome-fingerprinted TLS connection.
// HTTP/2 is attempted first; on failure the request is replayed over HTTP/1.1, unless
// a non-idempotent request already reached the server.
// Plain http URLs go through the default transport.
type fingerprintTransport struct{}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return http.DefaultTransport.RoundTrip(req)
	}

	retry, err := replayable(req)
	if err != nil {
		return nil, err
	}

	var sent atomic.Bool
	trace := &httptrace.ClientTrace{WroteHeaders: func() { sent.Store(true) }}

	resp, err := getH2Transport().RoundTrip(req.WithContext(httptrace.WithClientTrace(req.Context(), trace)))
	if err == nil {
		return resp, nil
	}

	if !shouldReplay(req, sent.Load()) {
		return nil, fmt.Errorf("%s %s over h2: %w", req.Method, req.URL.Redacted(), err)
	}

	return h1Transport.RoundTrip(retry)
}

// shouldReplay reports whether a request that failed over HTTP/2 may be sent again.
// Once headers were written, only idempotent methods are repeated.
func shouldReplay(req *http.Request, sent bool) bool {
	if !sent {
		return true
	}

	switch req.Method {
	case "", http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// replayable returns a copy of req whose body can be sent a second time.
func replayable(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind body: %w", err)
		}
		clone.Body = body
		return clone, nil
	}

	return nil, fmt.Errorf("request body for %s cannot be replayed", req.URL.Redacted())
}

// dialTLS creates a TLS connection mimicking Chrome 120's ClientHello.
// A nil protos advertises both h2 and http/1.1, the way Chrome does.
func dialTLS(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
