package engine

import "time"

type TxStatus string

const (
	TxPending   TxStatus = "PENDING"
	TxConfirmed TxStatus = "CONFIRMED"
	TxUnknown   TxStatus = "UNKNOWN"
)

type SessionStatus string

const (
	SessionConnected    SessionStatus = "CONNECTED"
	SessionDisconnected SessionStatus = "DISCONNECTED"
)

// Account is a synthetic wallet account. The roster is fixed at engine
// construction: each built-in address carries the full loaded network list.
type Account struct {
	Address  string   `json:"address"`
	Label    string   `json:"label"`
	Networks []string `json:"networks"`
}

// Transaction lives in the store from send until daemon exit. Status moves
// PENDING -> CONFIRMED exactly once and never reverses.
type Transaction struct {
	GUID      string    `json:"guid"`
	Network   string    `json:"network"`
	From      string    `json:"from"`
	To        string    `json:"to,omitempty"`
	Contract  string    `json:"contract,omitempty"`
	Nonce     *float64  `json:"nonce,omitempty"`
	Value     string    `json:"value,omitempty"`
	Data      string    `json:"data,omitempty"`
	GasPrice  string    `json:"gasPrice,omitempty"`
	Status    TxStatus  `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TxRequest is the send payload as received over the wire.
type TxRequest struct {
	Network  string   `json:"network"`
	From     string   `json:"from"`
	To       string   `json:"to,omitempty"`
	Contract string   `json:"contract,omitempty"`
	Nonce    *float64 `json:"nonce,omitempty"`
	Value    string   `json:"value,omitempty"`
	Data     string   `json:"data,omitempty"`
	GasPrice string   `json:"gasPrice,omitempty"`
}

// Session is a mocked WalletConnect pairing. Switch updates address and
// network in place; disconnect is a terminal, idempotent transition.
type Session struct {
	ID          string        `json:"id"`
	Address     string        `json:"address"`
	Network     string        `json:"network"`
	URI         string        `json:"uri"`
	Status      SessionStatus `json:"status"`
	ConnectedAt time.Time     `json:"connectedAt"`
}

type BalanceResult struct {
	Address    string    `json:"address"`
	Network    string    `json:"network"`
	BalanceETH string    `json:"balanceEth"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type TxStatusResult struct {
	GUID      string    `json:"guid"`
	Status    TxStatus  `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BuildInfo struct {
	Version     string `json:"version"`
	Platform    string `json:"platform"`
	Runtime     string `json:"runtime"`
	BuildTime   string `json:"buildTime"`
	VCSRevision string `json:"vcsRevision,omitempty"`
}
