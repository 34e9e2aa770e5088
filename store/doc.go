/*
Package store provides the key value storage used by the gate.

Two backends are available. MemStore keeps everything in a btree and is
used by tests. DBStore persists data in a tendermint database, usually
goleveldb. Both can be cache wrapped: a cache wrap collects writes in a
btree and applies them to the parent store on Write, or drops them on
Discard. The authorization engine uses a cache wrap as the transaction
that advances the nonce and appends the event.
*/
package store
