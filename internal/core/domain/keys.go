package domain

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
)

// Record keys are derived deterministically from their seed tuple, the
// same way the host runtime would derive account addresses. Deriving the
// same seeds always yields the same key, so one market exists per
// (creator, asset) pair and one position per (market, owner) pair.
const (
	marketSeed   = "market"
	vaultSeed    = "vault"
	positionSeed = "position"
)

// MarketKey derives the identity of the market for a (creator, asset) pair.
func MarketKey(creator, asset string) string {
	return deriveKey(marketSeed, creator, asset)
}

// VaultKey derives the identity of the escrow vault of a market.
func VaultKey(marketKey string) string {
	return deriveKey(vaultSeed, marketKey)
}

// PositionKey derives the identity of the position of an owner on a market.
func PositionKey(marketKey, owner string) string {
	return deriveKey(positionSeed, marketKey, owner)
}

// Each seed is length-prefixed before hashing so that distinct seed
// tuples can never encode to the same byte stream.
func deriveKey(seeds ...string) string {
	buf := make([]byte, 0)
	for _, seed := range seeds {
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(seed)))
		buf = append(buf, size[:]...)
		buf = append(buf, seed...)
	}
	return hex.EncodeToString(btcutil.Hash160(buf))
}
