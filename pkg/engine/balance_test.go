package engine

import (
	"errors"
	"testing"
	"time"
)

func TestGetBalance_CommittedValues(t *testing.T) {
	e, _ := newTestEngine()

	// 0xd8dA6BF2 = 3638193138; (3638193138+1) % 500000 = 193139.
	tests := []struct {
		address string
		network string
		want    string
	}{
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "eip155:1", "193.139000"},
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "eip155:137", "193.275000"},
		{"0x0000000000000000000000000000000000000000", "eip155:1", "0.001000"},
	}

	for _, tt := range tests {
		got, err := e.GetBalance(tt.address, tt.network)
		if err != nil {
			t.Fatalf("GetBalance(%s, %s): %v", tt.address, tt.network, err)
		}
		if got.BalanceETH != tt.want {
			t.Errorf("balance(%s, %s) = %s, want %s", tt.address, tt.network, got.BalanceETH, tt.want)
		}
		if got.Address != tt.address || got.Network != tt.network {
			t.Errorf("echo fields = %s/%s", got.Address, got.Network)
		}
	}
}

func TestGetBalance_Deterministic(t *testing.T) {
	e, clock := newTestEngine()

	first, err := e.GetBalance(addrA, "eip155:1")
	if err != nil {
		t.Fatal(err)
	}

	clock.Advance(time.Second)
	second, err := e.GetBalance(addrA, "eip155:1")
	if err != nil {
		t.Fatal(err)
	}

	if first.BalanceETH != second.BalanceETH {
		t.Errorf("balance changed between calls: %s -> %s", first.BalanceETH, second.BalanceETH)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Errorf("updatedAt should track call time")
	}
}

func TestGetBalance_Validation(t *testing.T) {
	e, _ := newTestEngine()

	cases := []struct {
		name    string
		address string
		network string
	}{
		{"missing 0x prefix", "1111111111111111111111111111111111111111", "eip155:1"},
		{"too short", "0x1111", "eip155:1"},
		{"non-hex", "0xZZ11111111111111111111111111111111111111", "eip155:1"},
		{"unknown network", addrA, "eip155:999"},
		{"malformed network", addrA, "mainnet"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.GetBalance(tt.address, tt.network)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}
