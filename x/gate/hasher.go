package gate

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
)

// OpHash returns the digest that authorities sign to authorize given
// operation at given nonce.
//
// The digest is keccak256 over the tight packed encoding of the
// operation fields followed by the nonce as a 32 byte big-endian word:
//
//   SetBalance: target (20) | balance (32) | nonce (32)
//   SetCode:    target (20) | code (variable) | nonce (32)
//   SetStorage: target (20) | key (32) | value (32) | nonce (32)
//
// This is the same as keccak256(abi.encodePacked(...)) in Solidity. The
// operation kind is not part of the digest.
func OpHash(op Operation, nonce uint64) quorum.Hash {
	return crypto.Keccak256(op.pack(), nonceWord(nonce))
}

func nonceWord(nonce uint64) []byte {
	w := new(uint256.Int).SetUint64(nonce).Bytes32()
	return w[:]
}
