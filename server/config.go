package server

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/moonlight/server/dao/inmem"
	"github.com/dekarrin/moonlight/server/dao/sqlite"
)

const (
	MaxSecretSize = 64
	MinSecretSize = 32
)

const (
	// DefaultWorldFile is the world data file hosted when none is configured.
	DefaultWorldFile = "world.toml"

	// DefaultUnauthDelay is used when Config.UnauthDelay is left at zero.
	DefaultUnauthDelay = time.Second
)

// StoreKind is the kind of persistence that accounts and the transcript are
// kept in. The zero value is the in-memory store.
type StoreKind int

const (
	StoreInMemory StoreKind = iota
	StoreSQLite
)

func (k StoreKind) String() string {
	switch k {
	case StoreInMemory:
		return "inmem"
	case StoreSQLite:
		return "sqlite"
	default:
		return fmt.Sprintf("StoreKind(%d)", int(k))
	}
}

// Store says where accounts and the transcript are kept. The zero value is a
// valid in-memory Store.
type Store struct {
	Kind StoreKind

	// Dir is the directory holding the database file. It is only used by
	// StoreSQLite.
	Dir string
}

// ParseStore parses a store string of the form "inmem" or "sqlite:DIR". The
// kind is case-insensitive. An empty string gives the in-memory store.
func ParseStore(s string) (Store, error) {
	kind, param, hasParam := strings.Cut(strings.TrimSpace(s), ":")
	param = strings.TrimSpace(param)

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", StoreInMemory.String():
		if hasParam {
			return Store{}, fmt.Errorf("in-memory store takes no params, got %q", param)
		}
		return Store{Kind: StoreInMemory}, nil
	case StoreSQLite.String():
		if param == "" {
			return Store{}, fmt.Errorf("sqlite store requires path to data directory after ':'")
		}
		return Store{Kind: StoreSQLite, Dir: param}, nil
	default:
		return Store{}, fmt.Errorf("store kind not one of 'inmem' or 'sqlite': %q", kind)
	}
}

// Validate returns an error if st cannot be opened.
func (st Store) Validate() error {
	switch st.Kind {
	case StoreInMemory:
		return nil
	case StoreSQLite:
		if st.Dir == "" {
			return fmt.Errorf("sqlite store has no data directory")
		}
		return nil
	default:
		return fmt.Errorf("unknown store kind: %s", st.Kind)
	}
}

// Open creates or opens the store. For sqlite the data directory is created
// if needed and an existing transcript is kept.
func (st Store) Open() (dao.Store, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	if st.Kind == StoreInMemory {
		return inmem.NewDatastore(), nil
	}

	if err := os.MkdirAll(st.Dir, 0770); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sqlite.NewDatastore(st.Dir)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite: %w", err)
	}
	return db, nil
}

// Config configures a MoonlightServer. Call FillDefaults before Validate to
// get defaults for unset fields.
type Config struct {
	// World is the path to the world data file that defines the hosted game.
	World string

	// Secret signs and verifies tokens. It must be between MinSecretSize and
	// MaxSecretSize bytes long and has no default.
	Secret []byte

	// Store is where accounts and the transcript are kept.
	Store Store

	// UnauthDelay is waited before responding to a client that failed to
	// authenticate, was forbidden, or caused a server error. Zero means
	// DefaultUnauthDelay and a negative value disables the delay.
	UnauthDelay time.Duration
}

// FillDefaults returns a copy of cfg with unset fields given their defaults.
func (cfg Config) FillDefaults() Config {
	if cfg.World == "" {
		cfg.World = DefaultWorldFile
	}
	if cfg.UnauthDelay == 0 {
		cfg.UnauthDelay = DefaultUnauthDelay
	}
	return cfg
}

// Validate returns an error if any field of cfg is invalid.
func (cfg Config) Validate() error {
	if cfg.World == "" {
		return fmt.Errorf("world: not set to path")
	}
	if n := len(cfg.Secret); n < MinSecretSize || n > MaxSecretSize {
		return fmt.Errorf("secret: must be %d to %d bytes, but is %d", MinSecretSize, MaxSecretSize, n)
	}
	if err := cfg.Store.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// delay gives UnauthDelay with negative values treated as no delay.
func (cfg Config) delay() time.Duration {
	if cfg.UnauthDelay < 0 {
		return 0
	}
	return cfg.UnauthDelay
}
