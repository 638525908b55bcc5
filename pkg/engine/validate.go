package engine

import (
	"math"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var hexDataPattern = regexp.MustCompile(`^0x[0-9a-fA-F]*$`)

// validAddress requires the 0x prefix; go-ethereum alone would also accept
// bare 40-hex strings.
func validAddress(addr string) bool {
	return strings.HasPrefix(addr, "0x") && common.IsHexAddress(addr)
}

func (e *Engine) checkAddress(field, addr string) error {
	if !validAddress(addr) {
		return validationErrorf("invalid %s address: %q", field, addr)
	}
	return nil
}

func (e *Engine) checkNetwork(name string) error {
	if !e.knownNetwork(name) {
		return validationErrorf("unknown network: %q", name)
	}
	return nil
}

func checkNonce(nonce *float64) error {
	if nonce == nil {
		return nil
	}
	if math.IsNaN(*nonce) || math.IsInf(*nonce, 0) || *nonce < 0 {
		return validationErrorf("nonce must be a non-negative finite number")
	}
	return nil
}

func checkHexData(data string) error {
	if data == "" {
		return nil
	}
	if !hexDataPattern.MatchString(data) {
		return validationErrorf("data must be a 0x-prefixed hex string")
	}
	return nil
}
