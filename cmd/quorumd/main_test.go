package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/cmd/quorumd/handlers"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/authority"
	"github.com/iov-one/quorum/x/gate"
	"github.com/tendermint/tendermint/libs/log"
)

func genesisOptions(t testing.TB, addrs []quorum.Address) quorum.Options {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"authority": map[string]interface{}{"addresses": addrs},
		"conf": map[string]interface{}{
			"gate": map[string]interface{}{"directory_timeout_ms": 1500, "max_signatures": 10},
		},
	})
	assert.Nil(t, err)
	var opts quorum.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))
	return opts
}

func TestApplyGenesisOnce(t *testing.T) {
	db := store.MemDBStore()
	keys := quorumtest.Authorities(t, 3)

	applied, err := applyGenesis(db, genesisOptions(t, quorumtest.Addresses(keys)))
	assert.Nil(t, err)
	assert.Equal(t, true, applied)

	got, err := authority.NewStoreDirectory(db).Authorities(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, quorumtest.Addresses(keys), got)

	conf, err := gate.LoadConfiguration(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1500), conf.DirectoryTimeoutMs)
	assert.Equal(t, int32(10), conf.MaxSignatures)

	// A second genesis must not overwrite the state.
	other := quorumtest.Authorities(t, 1)
	applied, err = applyGenesis(db, genesisOptions(t, quorumtest.Addresses(other)))
	assert.Nil(t, err)
	assert.Equal(t, false, applied)

	got, err = authority.NewStoreDirectory(db).Authorities(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, quorumtest.Addresses(keys), got)
}

func TestApplyGenesisFailureWritesNothing(t *testing.T) {
	db := store.MemDBStore()
	opts := quorum.Options{
		"authority": json.RawMessage(`{"addresses": ["not an address"]}`),
	}
	_, err := applyGenesis(db, opts)
	if err == nil {
		t.Fatal("want error")
	}
	ok, err := db.Has(genesisKey)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}

func TestDirectorySelection(t *testing.T) {
	db := store.MemDBStore()
	if _, ok := directory(configuration{}, db).(*authority.StoreDirectory); !ok {
		t.Fatal("want store directory")
	}
	if _, ok := directory(configuration{DirectoryURL: "http://localhost:1"}, db).(*authority.HTTPDirectory); !ok {
		t.Fatal("want http directory")
	}
}

func TestRouterSubmit(t *testing.T) {
	keys := quorumtest.Authorities(t, 3)
	var logs bytes.Buffer
	logger := log.NewTMLogger(&logs)
	engine := gate.NewEngine(store.MemStore(), authority.NewStatic(quorumtest.Addresses(keys)...),
		gate.WithListener(eventLogger(logger)))

	srv := httptest.NewServer(router(engine, logger))
	defer srv.Close()

	target := quorumtest.SequenceAddr(7)
	hash, err := engine.SetCodeOpHash(target, []byte{0x60, 0x80})
	assert.Nil(t, err)

	var sigs []string
	for _, s := range quorumtest.Sign(t, hash, keys...) {
		sigs = append(sigs, hexutil.Encode(s))
	}
	body, err := json.Marshal(map[string]interface{}{
		"kind":       gate.KindSetCode,
		"target":     target,
		"code":       "0x6080",
		"signatures": sigs,
	})
	assert.Nil(t, err)

	resp, err := http.Post(srv.URL+"/submit", "application/json", bytes.NewReader(body))
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var ev handlers.EventResponse
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&ev))
	assert.Equal(t, gate.KindSetCode, ev.Kind)
	assert.Equal(t, uint64(0), ev.Nonce)

	if !strings.Contains(logs.String(), "gate.kind=SetCode") {
		t.Fatalf("event not logged: %s", logs.String())
	}

	resp, err = http.Get(srv.URL + "/missing")
	assert.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
