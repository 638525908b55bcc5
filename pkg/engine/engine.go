package engine

import (
	"sync"
	"time"

	"github.com/sipeed/walletd/pkg/config"
	"github.com/sipeed/walletd/pkg/logger"
)

// ConfirmationDelay is how long a transaction stays PENDING before a status
// query flips it to CONFIRMED.
const ConfirmationDelay = 5 * time.Second

// Built-in account roster. Addresses are the well-known local devnet keys;
// real key material never enters the daemon.
var builtinAccounts = []struct {
	address string
	label   string
}{
	{"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", "dev-0"},
	{"0x70997970C51812dc3A010C7d01b50e0d17dc79C8", "dev-1"},
	{"0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC", "dev-2"},
}

// Engine owns the transaction and session stores for the daemon's lifetime.
// All state is in-memory and discarded on process exit. Every exported
// operation is safe for concurrent use; a single mutex serializes access to
// both stores, which is enough because no operation blocks inside the
// critical section.
type Engine struct {
	mu sync.Mutex

	networks   []config.Network
	networkSet map[string]config.Network
	accounts   []Account

	txs          map[string]*Transaction
	sessions     map[string]*Session
	sessionOrder []string

	build     BuildInfo
	startedAt time.Time
	now       func() time.Time
}

type Option func(*Engine)

// WithClock overrides the engine's time source. Tests use this to drive the
// confirmation delay without sleeping.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine over the loaded network list. The account roster is
// the built-in address set cross-joined with the network names, and build
// metadata is resolved once, before the engine is shared.
func New(networks []config.Network, opts ...Option) *Engine {
	e := &Engine{
		networks:   networks,
		networkSet: make(map[string]config.Network, len(networks)),
		txs:        make(map[string]*Transaction),
		sessions:   make(map[string]*Session),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	names := make([]string, 0, len(networks))
	for _, n := range networks {
		e.networkSet[n.Name] = n
		names = append(names, n.Name)
	}

	e.accounts = make([]Account, 0, len(builtinAccounts))
	for _, a := range builtinAccounts {
		e.accounts = append(e.accounts, Account{
			Address:  a.address,
			Label:    a.label,
			Networks: names,
		})
	}

	e.startedAt = e.now()
	e.build = resolveBuildInfo(e.startedAt)

	logger.InfoCF("engine", "Engine initialized", map[string]any{
		"networks": len(networks),
		"accounts": len(e.accounts),
		"version":  e.build.Version,
	})

	return e
}

// GetNetworks returns the immutable network list.
func (e *Engine) GetNetworks() []config.Network {
	out := make([]config.Network, len(e.networks))
	copy(out, e.networks)
	return out
}

// GetAccounts returns the immutable account list.
func (e *Engine) GetAccounts() []Account {
	out := make([]Account, len(e.accounts))
	copy(out, e.accounts)
	return out
}

// GetBuildInfo returns metadata computed at construction.
func (e *Engine) GetBuildInfo() BuildInfo {
	return e.build
}

// Uptime reports how long the engine has been alive.
func (e *Engine) Uptime() time.Duration {
	return e.now().Sub(e.startedAt)
}

func (e *Engine) knownNetwork(name string) bool {
	_, ok := e.networkSet[name]
	return ok
}
