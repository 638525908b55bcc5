package engine

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func validTxRequest() TxRequest {
	return TxRequest{
		Network: "eip155:1",
		From:    addrA,
		To:      addrB,
		Value:   "0.01",
	}
}

func TestCreateTransaction_Pending(t *testing.T) {
	e, _ := newTestEngine()

	tx, err := e.CreateTransaction(validTxRequest())
	if err != nil {
		t.Fatal(err)
	}
	if tx.GUID == "" {
		t.Error("guid is empty")
	}
	if tx.Status != TxPending {
		t.Errorf("status = %s, want PENDING", tx.Status)
	}
	if tx.CreatedAt.IsZero() {
		t.Error("createdAt is zero")
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	e, _ := newTestEngine()

	neg := -1.0
	cases := []struct {
		name string
		mut  func(*TxRequest)
	}{
		{"unknown network", func(r *TxRequest) { r.Network = "eip155:404" }},
		{"bad from", func(r *TxRequest) { r.From = "0xnot-an-address" }},
		{"bad to", func(r *TxRequest) { r.To = "0x1234" }},
		{"bad contract", func(r *TxRequest) { r.Contract = "deadbeef" }},
		{"negative nonce", func(r *TxRequest) { r.Nonce = &neg }},
		{"bad data", func(r *TxRequest) { r.Data = "0xZZ" }},
		{"data without prefix", func(r *TxRequest) { r.Data = "deadbeef" }},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := validTxRequest()
			tt.mut(&req)
			_, err := e.CreateTransaction(req)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}

	// Rejected requests must not leave partial writes behind.
	if len(e.txs) != 0 {
		t.Errorf("store has %d transactions after rejected requests, want 0", len(e.txs))
	}
}

func TestCreateTransaction_OptionalFields(t *testing.T) {
	e, _ := newTestEngine()

	nonce := 7.0
	req := TxRequest{
		Network:  "eip155:137",
		From:     addrA,
		Contract: addrB,
		Nonce:    &nonce,
		Data:     "0x",
		GasPrice: "30000000000",
	}
	tx, err := e.CreateTransaction(req)
	if err != nil {
		t.Fatal(err)
	}
	if tx.To != "" || tx.Contract != addrB {
		t.Errorf("to/contract = %q/%q", tx.To, tx.Contract)
	}
	if tx.Nonce == nil || *tx.Nonce != 7 {
		t.Errorf("nonce = %v", tx.Nonce)
	}
}

func TestGetTransactionStatus_LazyConfirm(t *testing.T) {
	e, clock := newTestEngine()

	tx, err := e.CreateTransaction(validTxRequest())
	if err != nil {
		t.Fatal(err)
	}

	if got := e.GetTransactionStatus(tx.GUID); got.Status != TxPending {
		t.Fatalf("immediate status = %s, want PENDING", got.Status)
	}

	// Exactly at the delay boundary the transaction is still pending.
	clock.Advance(ConfirmationDelay)
	if got := e.GetTransactionStatus(tx.GUID); got.Status != TxPending {
		t.Fatalf("status at boundary = %s, want PENDING", got.Status)
	}

	clock.Advance(time.Second)
	if got := e.GetTransactionStatus(tx.GUID); got.Status != TxConfirmed {
		t.Fatalf("status past delay = %s, want CONFIRMED", got.Status)
	}

	// Confirmed is terminal.
	clock.Advance(time.Hour)
	if got := e.GetTransactionStatus(tx.GUID); got.Status != TxConfirmed {
		t.Fatalf("status reverted to %s", got.Status)
	}
}

func TestGetTransactionStatus_Unknown(t *testing.T) {
	e, _ := newTestEngine()

	got := e.GetTransactionStatus("never-issued")
	if got.Status != TxUnknown {
		t.Errorf("status = %s, want UNKNOWN", got.Status)
	}
	if got.GUID != "never-issued" {
		t.Errorf("guid = %q", got.GUID)
	}
}

func TestCreateTransaction_ConcurrentGUIDsUnique(t *testing.T) {
	e, _ := newTestEngine()

	const n = 100
	guids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := e.CreateTransaction(validTxRequest())
			if err != nil {
				t.Errorf("CreateTransaction: %v", err)
				return
			}
			guids <- tx.GUID
		}()
	}
	wg.Wait()
	close(guids)

	seen := make(map[string]bool, n)
	for guid := range guids {
		if seen[guid] {
			t.Fatalf("guid collision: %s", guid)
		}
		seen[guid] = true
	}
	if len(seen) != n {
		t.Errorf("got %d unique guids, want %d", len(seen), n)
	}
}

func TestGetTransactionStatus_ConcurrentWithConfirm(t *testing.T) {
	e, clock := newTestEngine()

	tx, err := e.CreateTransaction(validTxRequest())
	if err != nil {
		t.Fatal(err)
	}
	clock.Advance(ConfirmationDelay + time.Second)

	// Many readers race the lazy transition; all must observe CONFIRMED.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.GetTransactionStatus(tx.GUID); got.Status != TxConfirmed {
				t.Errorf("status = %s, want CONFIRMED", got.Status)
			}
		}()
	}
	wg.Wait()
}

func TestCreateTransaction_SnapshotIsolated(t *testing.T) {
	e, _ := newTestEngine()

	tx, err := e.CreateTransaction(validTxRequest())
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the returned record must not reach the store.
	tx.Status = TxStatus(fmt.Sprintf("%s-tampered", tx.Status))
	if got := e.GetTransactionStatus(tx.GUID); got.Status != TxPending {
		t.Errorf("store status = %s, want PENDING", got.Status)
	}
}
