package engine

import (
	"github.com/google/uuid"

	"github.com/sipeed/walletd/pkg/logger"
)

// CreateTransaction validates the payload and, only then, stores a fresh
// PENDING record. A rejected request leaves the store untouched.
func (e *Engine) CreateTransaction(req TxRequest) (*Transaction, error) {
	if err := e.checkNetwork(req.Network); err != nil {
		return nil, err
	}
	if err := e.checkAddress("from", req.From); err != nil {
		return nil, err
	}
	if req.To != "" {
		if err := e.checkAddress("to", req.To); err != nil {
			return nil, err
		}
	}
	if req.Contract != "" {
		if err := e.checkAddress("contract", req.Contract); err != nil {
			return nil, err
		}
	}
	if err := checkNonce(req.Nonce); err != nil {
		return nil, err
	}
	if err := checkHexData(req.Data); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tx := &Transaction{
		GUID:      uuid.NewString(),
		Network:   req.Network,
		From:      req.From,
		To:        req.To,
		Contract:  req.Contract,
		Nonce:     req.Nonce,
		Value:     req.Value,
		Data:      req.Data,
		GasPrice:  req.GasPrice,
		Status:    TxPending,
		CreatedAt: e.now(),
	}
	e.txs[tx.GUID] = tx

	logger.InfoCF("engine", "Transaction created", map[string]any{
		"guid":    tx.GUID,
		"network": tx.Network,
		"from":    tx.From,
	})

	snapshot := *tx
	return &snapshot, nil
}

// GetTransactionStatus reports the status for a guid. An unknown guid is a
// valid query and yields UNKNOWN, not an error. Reading the status of a
// PENDING transaction past the confirmation delay flips it to CONFIRMED in
// the store; there is no background timer, so the transition is a documented
// side effect of this read and happens under the store lock.
func (e *Engine) GetTransactionStatus(guid string) TxStatusResult {
	now := e.now()

	e.mu.Lock()
	defer e.mu.Unlock()

	tx, ok := e.txs[guid]
	if !ok {
		return TxStatusResult{GUID: guid, Status: TxUnknown, UpdatedAt: now}
	}

	if tx.Status == TxPending && now.Sub(tx.CreatedAt) > ConfirmationDelay {
		tx.Status = TxConfirmed
		logger.InfoCF("engine", "Transaction confirmed", map[string]any{
			"guid": tx.GUID,
		})
	}

	return TxStatusResult{GUID: guid, Status: tx.Status, UpdatedAt: now}
}
