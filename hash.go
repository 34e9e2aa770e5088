package quorum

import (
	"encoding/hex"
	"encoding/json"

	"github.com/iov-one/quorum/errors"
)

// HashLength is the length of a digest and of a signature scalar.
const HashLength = 32

// Hash is a 32 byte word. It is used for operation digests, storage slots and
// the scalar components of a signature.
type Hash [HashLength]byte

// BytesToHash returns a hash with the value of b. If b is longer than the
// hash, the leading bytes are cropped. Shorter values are left padded.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// ParseHash decodes a hex representation, with or without a 0x prefix, that
// must be exactly 32 bytes long.
func ParseHash(s string) (Hash, error) {
	var h Hash
	raw, err := hex.DecodeString(strip0x(s))
	if err != nil {
		return h, errors.Wrap(errors.ErrInput, "cannot decode hex")
	}
	if len(raw) != HashLength {
		return h, errors.ErrInput.Newf("hash must be %d bytes, got %d", HashLength, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// Bytes returns a slice that is a copy of the hash value.
func (h Hash) Bytes() []byte {
	return append([]byte(nil), h[:]...)
}

// IsZero returns true if all bytes of the hash are zero.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// String returns the 0x prefixed lowercase hex representation.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	v, err := ParseHash(enc)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Set implements flag.Value interface.
func (h *Hash) Set(s string) error {
	v, err := ParseHash(s)
	if err != nil {
		return err
	}
	*h = v
	return nil
}
