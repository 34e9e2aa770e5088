package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/authority"
	"github.com/iov-one/quorum/x/gate"
)

type testGate struct {
	keys   []*crypto.PrivateKey
	engine *gate.Engine
}

func newTestGate(t testing.TB) *testGate {
	keys := quorumtest.Authorities(t, 3)
	dir := authority.NewStatic(quorumtest.Addresses(keys)...)
	return &testGate{
		keys:   keys,
		engine: gate.NewEngine(store.MemStore(), dir),
	}
}

func post(t testing.TB, h http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("cannot marshal body: %s", err)
	}
	r, _ := http.NewRequest("POST", "/", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t testing.TB, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dest); err != nil {
		t.Fatalf("cannot decode JSON response: %s", err)
	}
}

func TestSubmitFlow(t *testing.T) {
	g := newTestGate(t)
	op := OperationRequest{
		Kind:    gate.KindSetBalance,
		Target:  quorumtest.SequenceAddr(1),
		Balance: "0x10",
	}

	w := post(t, &OpHashHandler{Gate: g.engine}, op)
	if w.Code != http.StatusOK {
		t.Fatalf("failed response: %d %s", w.Code, w.Body)
	}
	var hash HashResponse
	decode(t, w, &hash)

	var sigs []hexutil.Bytes
	for _, s := range quorumtest.Sign(t, hash.Hash, g.keys[0], g.keys[1]) {
		sigs = append(sigs, s)
	}
	w = post(t, &SubmitHandler{Gate: g.engine}, SubmitRequest{OperationRequest: op, Signatures: sigs})
	if w.Code != http.StatusOK {
		t.Fatalf("failed response: %d %s", w.Code, w.Body)
	}
	var ev EventResponse
	decode(t, w, &ev)
	if ev.Kind != gate.KindSetBalance || ev.Balance != "16" || ev.Nonce != 0 {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// Replay is rejected.
	w = post(t, &SubmitHandler{Gate: g.engine}, SubmitRequest{OperationRequest: op, Signatures: sigs})
	if w.Code != http.StatusForbidden {
		t.Fatalf("want forbidden, got %d %s", w.Code, w.Body)
	}
	var errResp struct {
		Errors []string
		Code   uint32
	}
	decode(t, w, &errResp)
	if errResp.Code != errors.ErrInsufficientSignatures.Code() {
		t.Fatalf("unexpected error code: %+v", errResp)
	}

	r, _ := http.NewRequest("GET", "/nonce", nil)
	w = httptest.NewRecorder()
	(&NonceHandler{Gate: g.engine}).ServeHTTP(w, r)
	var nonce NonceResponse
	decode(t, w, &nonce)
	if nonce.Nonce != 1 {
		t.Fatalf("want nonce 1, got %d", nonce.Nonce)
	}

	r, _ = http.NewRequest("GET", "/events?from=0&limit=10", nil)
	w = httptest.NewRecorder()
	(&EventsHandler{Gate: g.engine}).ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("failed response: %d %s", w.Code, w.Body)
	}
	var events EventsResponse
	decode(t, w, &events)
	if len(events.Events) != 1 || events.Next != 1 {
		t.Fatalf("unexpected events: %+v", events)
	}
	if !events.Events[0].Target.Equals(quorumtest.SequenceAddr(1)) {
		t.Fatalf("unexpected target: %s", events.Events[0].Target)
	}
}

func TestSubmitExplicitComponents(t *testing.T) {
	g := newTestGate(t)
	key := quorum.BytesToHash([]byte{1})
	value := quorum.BytesToHash([]byte{2})
	op := OperationRequest{
		Kind:   gate.KindSetStorage,
		Target: quorumtest.SequenceAddr(2),
		Key:    &key,
		Value:  &value,
	}
	hash, err := g.engine.SetStorageOpHash(op.Target, key, value)
	if err != nil {
		t.Fatal(err)
	}

	req := SubmitRequest{OperationRequest: op}
	for _, sig := range quorumtest.Sign(t, hash, g.keys[1], g.keys[2]) {
		v, r, s, err := crypto.DecomposeSignature(sig)
		if err != nil {
			t.Fatal(err)
		}
		req.V = append(req.V, uint(v))
		req.R = append(req.R, r)
		req.S = append(req.S, s)
	}

	w := post(t, &SubmitHandler{Gate: g.engine}, req)
	if w.Code != http.StatusOK {
		t.Fatalf("failed response: %d %s", w.Code, w.Body)
	}
	var ev EventResponse
	decode(t, w, &ev)
	if ev.Key == nil || *ev.Key != key || *ev.Value != value {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// Unequal lists are rejected before any verification.
	req.S = req.S[:1]
	w = post(t, &SubmitHandler{Gate: g.engine}, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want bad request, got %d %s", w.Code, w.Body)
	}
}

func TestSubmitBadRequests(t *testing.T) {
	cases := map[string]struct {
		Body     string
		WantCode int
	}{
		"not json": {
			Body:     `{`,
			WantCode: http.StatusBadRequest,
		},
		"unknown kind": {
			Body:     fmt.Sprintf(`{"kind": "Transfer", "target": "%s"}`, quorumtest.SequenceAddr(1)),
			WantCode: http.StatusBadRequest,
		},
		"negative balance": {
			Body:     fmt.Sprintf(`{"kind": "SetBalance", "target": "%s", "balance": "-1"}`, quorumtest.SequenceAddr(1)),
			WantCode: http.StatusBadRequest,
		},
		"balance too big": {
			Body:     fmt.Sprintf(`{"kind": "SetBalance", "target": "%s", "balance": "0x1%s"}`, quorumtest.SequenceAddr(1), strings.Repeat("0", 64)),
			WantCode: http.StatusBadRequest,
		},
		"missing target": {
			Body:     `{"kind": "SetCode", "code": "0x00"}`,
			WantCode: http.StatusBadRequest,
		},
		"short signature": {
			Body:     fmt.Sprintf(`{"kind": "SetCode", "target": "%s", "signatures": ["0x0102"]}`, quorumtest.SequenceAddr(1)),
			WantCode: http.StatusBadRequest,
		},
		"both signature forms": {
			Body:     fmt.Sprintf(`{"kind": "SetCode", "target": "%s", "signatures": ["0x0102"], "v": [27]}`, quorumtest.SequenceAddr(1)),
			WantCode: http.StatusBadRequest,
		},
		"recovery id overflow": {
			Body:     fmt.Sprintf(`{"kind": "SetCode", "target": "%s", "v": [300], "r": ["%s"], "s": ["%s"]}`, quorumtest.SequenceAddr(1), quorum.Hash{}, quorum.Hash{}),
			WantCode: http.StatusBadRequest,
		},
		"no signatures": {
			Body:     fmt.Sprintf(`{"kind": "SetCode", "target": "%s"}`, quorumtest.SequenceAddr(1)),
			WantCode: http.StatusForbidden,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			g := newTestGate(t)
			r, _ := http.NewRequest("POST", "/submit", strings.NewReader(tc.Body))
			w := httptest.NewRecorder()
			(&SubmitHandler{Gate: g.engine}).ServeHTTP(w, r)
			if w.Code != tc.WantCode {
				t.Fatalf("want %d, got %d %s", tc.WantCode, w.Code, w.Body)
			}
		})
	}
}

func TestSubmitDirectoryUnavailable(t *testing.T) {
	dir := authority.DirectoryFunc(func(context.Context) ([]quorum.Address, error) {
		return nil, errors.Wrap(errors.ErrDirectoryUnavailable, "offline")
	})
	engine := gate.NewEngine(store.MemStore(), dir)
	body := SubmitRequest{OperationRequest: OperationRequest{Kind: gate.KindSetCode, Target: quorumtest.SequenceAddr(1)}}
	w := post(t, &SubmitHandler{Gate: engine}, body)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want service unavailable, got %d %s", w.Code, w.Body)
	}
}

func TestDecomposeHandler(t *testing.T) {
	sig := make([]byte, crypto.SignatureLength)
	sig[0], sig[63], sig[64] = 0xaa, 0xbb, 28

	w := post(t, &DecomposeHandler{}, DecomposeRequest{Signature: sig})
	if w.Code != http.StatusOK {
		t.Fatalf("failed response: %d %s", w.Code, w.Body)
	}
	var resp DecomposeResponse
	decode(t, w, &resp)
	if resp.V != 28 || resp.R[0] != 0xaa || resp.S[31] != 0xbb {
		t.Fatalf("unexpected components: %+v", resp)
	}

	w = post(t, &DecomposeHandler{}, DecomposeRequest{Signature: sig[:10]})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want bad request, got %d %s", w.Code, w.Body)
	}
}

func TestEventsHandlerQuery(t *testing.T) {
	g := newTestGate(t)
	cases := map[string]int{
		"/events":                http.StatusOK,
		"/events?from=5":         http.StatusOK,
		"/events?from=x":         http.StatusBadRequest,
		"/events?limit=0":        http.StatusBadRequest,
		"/events?limit=1001":     http.StatusBadRequest,
		"/events?from=1&limit=3": http.StatusOK,
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			r, _ := http.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			(&EventsHandler{Gate: g.engine}).ServeHTTP(w, r)
			if w.Code != want {
				t.Fatalf("want %d, got %d %s", want, w.Code, w.Body)
			}
		})
	}
}

func TestErrorStatus(t *testing.T) {
	cases := map[string]struct {
		Err  error
		Want int
	}{
		"malformed batch":     {Err: errors.ErrMalformedBatch, Want: http.StatusBadRequest},
		"invalid signer":      {Err: errors.Wrap(errors.ErrInvalidSigner, "sig 1"), Want: http.StatusBadRequest},
		"insufficient":        {Err: errors.ErrInsufficientSignatures, Want: http.StatusForbidden},
		"directory":           {Err: errors.ErrDirectoryUnavailable, Want: http.StatusServiceUnavailable},
		"overflow":            {Err: errors.ErrOverflow, Want: http.StatusConflict},
		"database":            {Err: errors.ErrDatabase, Want: http.StatusInternalServerError},
		"unregistered errors": {Err: fmt.Errorf("boom"), Want: http.StatusInternalServerError},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := ErrorStatus(tc.Err); got != tc.Want {
				t.Fatalf("want %d, got %d", tc.Want, got)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	g := newTestGate(t)
	r, _ := http.NewRequest("GET", "/submit", nil)
	w := httptest.NewRecorder()
	(&SubmitHandler{Gate: g.engine}).ServeHTTP(w, r)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want method not allowed, got %d", w.Code)
	}
}
