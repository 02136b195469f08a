// Package remote exports the engine's diagnostic stream over HTTP/3,
// grounded on the teacher's internal/runtime/netstack/http3.go wrapper
// around quic-go/http3.
package remote

import (
	"crypto/tls"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	quic "github.com/quic-go/quic-go"
	http3 "github.com/quic-go/quic-go/http3"
)

// Report is one exception occurrence as forwarded to a remote
// diagnostic sink.
type Report struct {
	Class     string    `json:"class"`
	Message   string    `json:"message"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	Thread    int64     `json:"thread"`
	Timestamp time.Time `json:"timestamp"`
}

// Exporter serves a bounded ring of recent Reports over HTTP/3 at
// GET /reports, and accepts new ones via except's diagnostic hook
// through Record.
type Exporter struct {
	pc    net.PacketConn
	srv   *http3.Server
	close func() error
	errC  chan error
	addr  string

	mu      sync.Mutex
	reports []Report
	cap     int
}

// Options configures the underlying QUIC transport, mirroring the
// teacher's HTTP3Options.
type Options struct {
	MaxIdleTimeout  time.Duration
	KeepAlivePeriod time.Duration
	Capacity        int // max buffered reports; 0 defaults to 256
}

// New creates an Exporter bound to addr. tlsCfg may be nil, in which
// case a minimal TLS 1.3 config is synthesized, matching the teacher's
// convention of enforcing TLS 1.3 for QUIC.
func New(addr string, tlsCfg *tls.Config, opts Options) *Exporter {
	tlsCfg = ensureTLS13(tlsCfg)

	cap := opts.Capacity
	if cap <= 0 {
		cap = 256
	}

	e := &Exporter{addr: addr, errC: make(chan error, 1), cap: cap}

	mux := http.NewServeMux()
	mux.HandleFunc("/reports", e.handleReports)

	qc := &quic.Config{}
	if opts.MaxIdleTimeout > 0 {
		qc.MaxIdleTimeout = opts.MaxIdleTimeout
	}
	if opts.KeepAlivePeriod > 0 {
		qc.KeepAlivePeriod = opts.KeepAlivePeriod
	}

	e.srv = &http3.Server{Addr: addr, TLSConfig: tlsCfg, Handler: mux, QUICConfig: qc}

	return e
}

func ensureTLS13(tlsCfg *tls.Config) *tls.Config {
	if tlsCfg == nil {
		return &tls.Config{MinVersion: tls.VersionTLS13, NextProtos: []string{"h3"}}
	}

	if tlsCfg.MinVersion == 0 || tlsCfg.MinVersion < tls.VersionTLS13 {
		c := tlsCfg.Clone()
		c.MinVersion = tls.VersionTLS13

		if len(c.NextProtos) == 0 {
			c.NextProtos = []string{"h3"}
		}

		return c
	}

	return tlsCfg
}

// Write implements io.Writer so an Exporter can be passed directly to
// except.SetDiagnosticWriter/except.AddDiagnosticWriter: every
// diagnostic line the engine emits becomes a Report with only its
// Message field populated, timestamped on arrival.
func (e *Exporter) Write(p []byte) (int, error) {
	e.Record(Report{Message: string(p), Timestamp: time.Now()})

	return len(p), nil
}

// Record appends r to the exporter's ring buffer, evicting the oldest
// entry once Capacity is reached.
func (e *Exporter) Record(r Report) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reports = append(e.reports, r)
	if len(e.reports) > e.cap {
		e.reports = e.reports[len(e.reports)-e.cap:]
	}
}

func (e *Exporter) handleReports(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	snapshot := append([]Report(nil), e.reports...)
	e.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snapshot)
}

// Start begins serving on an ephemeral UDP port if addr ends with
// ":0"; the string Start returns is the actual bound address.
func (e *Exporter) Start() (string, error) {
	var err error

	e.pc, err = net.ListenPacket("udp", e.addr)
	if err != nil {
		return "", err
	}

	realAddr := e.pc.LocalAddr().String()
	done := make(chan struct{})

	go func() {
		if err := e.srv.Serve(e.pc); err != nil {
			select {
			case e.errC <- err:
			default:
			}
		}

		close(done)
	}()

	e.close = func() error {
		_ = e.pc.Close()

		select {
		case <-done:
		case <-time.After(time.Second):
		}

		return nil
	}

	return realAddr, nil
}

// Stop closes the exporter's listener.
func (e *Exporter) Stop() error {
	if e.close != nil {
		return e.close()
	}

	return nil
}

// Error streams the first serve error, if any.
func (e *Exporter) Error() <-chan error {
	return e.errC
}
