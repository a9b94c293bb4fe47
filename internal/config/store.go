package config

import (
	"strings"
	"time"
)

// Store configures the document store. URL is deliberately optional: when it
// is empty the process starts without a store and every persistence endpoint
// reports the store as not configured.
type Store struct {
	URL string `env:"DATABASE_URL"`

	// Name has no default here: diagnostics reports whether it was set, so
	// the fallback is applied where the database handle is opened.
	Name string `env:"DATABASE_NAME"`

	ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" envDefault:"10s"`

	MaxConns        int32         `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MinConns        int32         `env:"DATABASE_MIN_CONNS" envDefault:"0"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" envDefault:"1h"`
	MaxConnIdleTime time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" envDefault:"30m"`
}

// Backend identifies the document store implementation selected by the URL.
type Backend uint8

const (
	BackendNone Backend = iota
	BackendMongo
	BackendPostgres
	BackendUnknown
)

// Backend derives the store backend from the URL scheme.
func (s Store) Backend() Backend {
	switch {
	case s.URL == "":
		return BackendNone
	case strings.HasPrefix(s.URL, "mongodb://"), strings.HasPrefix(s.URL, "mongodb+srv://"):
		return BackendMongo
	case strings.HasPrefix(s.URL, "postgres://"), strings.HasPrefix(s.URL, "postgresql://"):
		return BackendPostgres
	default:
		return BackendUnknown
	}
}
