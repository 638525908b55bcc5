package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sipeed/walletd/pkg/logger"
)

const wcURIPrefix = "wc:"

// ListSessions returns a snapshot of all sessions in insertion order.
func (e *Engine) ListSessions() []Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Session, 0, len(e.sessionOrder))
	for _, id := range e.sessionOrder {
		out = append(out, *e.sessions[id])
	}
	return out
}

// ConnectSession creates a new CONNECTED session for a pairing URI.
func (e *Engine) ConnectSession(address, network, uri string) (*Session, error) {
	if err := e.checkAddress("wallet", address); err != nil {
		return nil, err
	}
	if err := e.checkNetwork(network); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(uri, wcURIPrefix) {
		return nil, validationErrorf("uri must start with %q", wcURIPrefix)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sess := &Session{
		ID:          uuid.NewString(),
		Address:     address,
		Network:     network,
		URI:         uri,
		Status:      SessionConnected,
		ConnectedAt: e.now(),
	}
	e.sessions[sess.ID] = sess
	e.sessionOrder = append(e.sessionOrder, sess.ID)

	logger.InfoCF("engine", "Session connected", map[string]any{
		"session": sess.ID,
		"network": network,
	})

	snapshot := *sess
	return &snapshot, nil
}

// SwitchSession updates a session's address and/or network in place.
// Omitted fields keep their current values; the session's id, status and
// connection time are never touched. Provided fields are validated before
// anything is written.
func (e *Engine) SwitchSession(id string, address, network *string) (*Session, error) {
	if address != nil {
		if err := e.checkAddress("wallet", *address); err != nil {
			return nil, err
		}
	}
	if network != nil {
		if err := e.checkNetwork(*network); err != nil {
			return nil, err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions[id]
	if !ok {
		return nil, &NotFoundError{Resource: "session", ID: id}
	}

	if address != nil {
		sess.Address = *address
	}
	if network != nil {
		sess.Network = *network
	}

	snapshot := *sess
	return &snapshot, nil
}

// DisconnectSession forces a session to DISCONNECTED. The transition is
// terminal and repeated calls are valid no-ops.
func (e *Engine) DisconnectSession(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions[id]
	if !ok {
		return nil, &NotFoundError{Resource: "session", ID: id}
	}

	sess.Status = SessionDisconnected

	logger.InfoCF("engine", "Session disconnected", map[string]any{
		"session": id,
	})

	snapshot := *sess
	return &snapshot, nil
}
