/*
Package crypto provides the secp256k1 signature primitives used to authorize
gate operations.

A signature travels as a 65 byte blob

	r (32 bytes) | s (32 bytes) | v (1 byte)

where r and s are big-endian scalars and v is the recovery id in the EVM
ecrecover convention (27 or 28). DecomposeSignature splits a blob into its
components and Recover derives the signing address from a digest and those
components. Addresses are the last 20 bytes of the keccak256 hash of the
uncompressed public key, so signatures produced by any Ethereum compatible
tooling over the same digest are accepted.
*/
package crypto
