package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/showcase/pkg/viewstate"
)

// SessionConfig holds configuration for individual sessions.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a message from the client.
	// Pings reset it. Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between heartbeat pings.
	// Default: 30 seconds.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum size of an incoming WebSocket message.
	// Default: 16KB.
	MaxMessageSize int64

	// MaxEventQueue is the size of the action and dispatch buffers.
	// Default: 64.
	MaxEventQueue int

	// Variant selects the widget feature set. Default: rich.
	Variant viewstate.Variant

	// ToastDelay is the auto-hide delay. Default: viewstate.DefaultToastDelay.
	ToastDelay time.Duration
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    16 * 1024,
		MaxEventQueue:     64,
		Variant:           viewstate.VariantRich,
		ToastDelay:        viewstate.DefaultToastDelay,
	}
}

// Clone returns a copy of the SessionConfig.
func (c *SessionConfig) Clone() *SessionConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// ServerConfig holds configuration for the HTTP/WebSocket server.
type ServerConfig struct {
	// Address is the address to listen on. Default: "localhost:3000".
	Address string

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	// Default: 4096.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the WebSocket request origin.
	// Default: same-origin only.
	CheckOrigin func(r *http.Request) bool

	// SessionConfig is the configuration for individual sessions.
	SessionConfig *SessionConfig

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds reading request headers. Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// MaxSessions is the maximum number of concurrent sessions.
	// 0 means no limit.
	MaxSessions int

	// Title overrides the catalog title in the document head.
	Title string

	// Stylesheet, when set, is linked instead of loading TailwindCDN.
	Stylesheet  string
	TailwindCDN string

	// Favicon and Description fill the document head when set.
	Favicon     string
	Description string

	// Middleware wraps every action handler, outermost first.
	Middleware []Middleware

	// Registry receives the server's Prometheus collectors. Gatherer backs
	// the /metrics route; when nil the route is not mounted.
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer

	// MetricsNamespace prefixes the server's collectors. Default: "showcase".
	MetricsNamespace string

	// Logger is the base logger. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:3000",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		SessionConfig:     DefaultSessionConfig(),
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		TailwindCDN:       "https://cdn.tailwindcss.com",
		MetricsNamespace:  "showcase",
	}
}

// applyDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) applyDefaults() {
	d := DefaultServerConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.SessionConfig == nil {
		c.SessionConfig = d.SessionConfig
	} else {
		c.SessionConfig.applyDefaults()
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.Stylesheet == "" && c.TailwindCDN == "" {
		c.TailwindCDN = d.TailwindCDN
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = d.MetricsNamespace
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

func (c *SessionConfig) applyDefaults() {
	d := DefaultSessionConfig()
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = d.HeartbeatInterval
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.MaxEventQueue == 0 {
		c.MaxEventQueue = d.MaxEventQueue
	}
	if c.Variant == "" {
		c.Variant = d.Variant
	}
	if c.ToastDelay <= 0 {
		c.ToastDelay = d.ToastDelay
	}
}
