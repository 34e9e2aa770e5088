package crypto

import (
	"github.com/iov-one/quorum"
	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy keccak256 (pre SHA3 standardization) digest
// of the concatenation of all given chunks.
func Keccak256(chunks ...[]byte) quorum.Hash {
	var h quorum.Hash
	d := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		_, _ = d.Write(c)
	}
	d.Sum(h[:0])
	return h
}
