/*

Package quorum defines types used throughout the majority signature
authorization gate, such as addresses, hashes, storage interfaces and
genesis options. Look into x/gate to learn how an operation is authorized
and into x/authority for the sources of the authority list.

*/

package quorum
