package crypto

import (
	"crypto/ecdsa"
	"encoding/hex"
	"io/ioutil"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	// Sign returns a raw signature of given digest in the
	// r | s | v layout.
	Sign(hash quorum.Hash) ([]byte, error)
	// Address returns the identity that signatures of this signer
	// recover to.
	Address() quorum.Address
}

// PrivateKey is a secp256k1 private key.
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

var _ Signer = (*PrivateKey)(nil)

// GenPrivateKey returns a random new private key.
func GenPrivateKey() (*PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrState, "generate key: %s", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes loads a private key from its 32 byte scalar.
func PrivateKeyFromBytes(raw []byte) (*PrivateKey, error) {
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "private key: %s", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex loads a private key from its hex encoded 32 byte
// scalar. A 0x prefix is allowed.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "private key is not hex encoded")
	}
	return PrivateKeyFromBytes(raw)
}

// LoadPrivateKey reads a hex encoded private key from given file.
func LoadPrivateKey(path string) (*PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot read %q file: %s", path, err)
	}
	return PrivateKeyFromHex(string(raw))
}

// Bytes returns the 32 byte scalar of this key.
func (p *PrivateKey) Bytes() []byte {
	return crypto.FromECDSA(p.key)
}

// Hex returns the hex encoded scalar of this key.
func (p *PrivateKey) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// Address returns the address of the public key.
func (p *PrivateKey) Address() quorum.Address {
	addr := crypto.PubkeyToAddress(p.key.PublicKey)
	return quorum.Address(addr.Bytes())
}

// Sign signs given digest. Returned blob has the recovery id offset by
// RecoveryIDOffset, as expected by Recover.
func (p *PrivateKey) Sign(hash quorum.Hash) ([]byte, error) {
	sig, err := crypto.Sign(hash[:], p.key)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrState, "sign: %s", err)
	}
	sig[64] += RecoveryIDOffset
	return sig, nil
}
