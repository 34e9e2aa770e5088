package crypto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// RecoveryIDOffset is added to the raw recovery id (0 or 1) to produce the
// v value of a signature.
const RecoveryIDOffset = 27

// Recover returns the address of the key that produced given signature
// components over given digest.
//
// The rules follow the EVM ecrecover precompile: v must be 27 or 28, r and s
// must be within [1, secp256k1n). High s values are accepted. Any failure
// results in ErrInvalidSigner and a zero address is never returned.
func Recover(hash quorum.Hash, v uint8, r, s quorum.Hash) (quorum.Address, error) {
	if v != RecoveryIDOffset && v != RecoveryIDOffset+1 {
		return nil, errors.ErrInvalidSigner.Newf("recovery id %d", v)
	}
	id := v - RecoveryIDOffset
	if !crypto.ValidateSignatureValues(id, new(big.Int).SetBytes(r[:]), new(big.Int).SetBytes(s[:]), false) {
		return nil, errors.ErrInvalidSigner.New("signature values out of range")
	}

	sig := ComposeSignature(id, r, s)
	pub, err := crypto.SigToPub(hash[:], sig)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidSigner, "recover public key: %s", err)
	}
	addr := crypto.PubkeyToAddress(*pub)
	if addr == zeroAddress {
		return nil, errors.ErrInvalidSigner.New("zero address")
	}
	return quorum.Address(addr.Bytes()), nil
}

var zeroAddress [quorum.AddressLength]byte
