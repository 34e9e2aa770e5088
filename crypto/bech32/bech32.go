/*
Package bech32 implements the human readable address encoding. Addresses
are 20 byte payloads regrouped into 5 bit words, prefixed with a human
readable part such as "tiov".
*/
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/quorum/errors"
)

// Decode returns the human readable part and the payload of given bech32
// string.
func Decode(enc string) (string, []byte, error) {
	hrp, words, err := bech32.Decode(enc)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	payload, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	return hrp, payload, nil
}

// DecodeWithPrefix works like Decode, but fails unless the human readable
// part equals hrp.
func DecodeWithPrefix(hrp, enc string) ([]byte, error) {
	got, payload, err := Decode(enc)
	if err != nil {
		return nil, err
	}
	if got != hrp {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 prefix %q, want %q", got, hrp)
	}
	return payload, nil
}

// Encode returns the bech32 representation of payload.
func Encode(hrp string, payload []byte) ([]byte, error) {
	if hrp == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "bech32 prefix")
	}
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	enc, err := bech32.Encode(hrp, words)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	return []byte(enc), nil
}
