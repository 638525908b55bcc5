package engine

import (
	"fmt"
	"strconv"
)

// GetBalance computes the deterministic pseudo-balance for an address on a
// network: the first 8 hex digits of the address interpreted as an unsigned
// integer, plus the numeric chain id, modulo 500000, divided by 1000,
// rendered with 6 fractional digits. The arithmetic is a committed external
// contract; callers may depend on exact values for given inputs.
func (e *Engine) GetBalance(address, network string) (BalanceResult, error) {
	if err := e.checkAddress("wallet", address); err != nil {
		return BalanceResult{}, err
	}
	if err := e.checkNetwork(network); err != nil {
		return BalanceResult{}, err
	}

	// Cannot fail: checkAddress guarantees 40 hex digits after 0x.
	seed, _ := strconv.ParseUint(address[2:10], 16, 64)
	chainID := e.networkSet[network].ChainID()

	milli := (seed + chainID) % 500000

	return BalanceResult{
		Address:    address,
		Network:    network,
		BalanceETH: fmt.Sprintf("%.6f", float64(milli)/1000),
		UpdatedAt:  e.now(),
	}, nil
}
