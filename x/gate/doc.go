/*
Package gate implements the majority signature authorization of ledger
commands.

Three kinds of operations are supported: SetBalance, SetCode and
SetStorage. Each operation is hashed together with the current nonce
(see OpHash). The operation is authorized when a majority of the current
authority list signed that hash. Signatures must be submitted in the same
relative order as the authority list, because matching is a single
forward scan over both lists (see MatchThreshold).

An authorized operation advances the nonce by one, which invalidates
every signature collected for the previous nonce, and is recorded in the
event log as a command for an external executor. The gate never applies
the command itself.
*/
package gate
