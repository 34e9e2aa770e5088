package handlers

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/gate"
)

// OperationRequest is the JSON representation of an operation. Only the
// fields relevant to the kind are used.
type OperationRequest struct {
	Kind   string         `json:"kind"`
	Target quorum.Address `json:"target"`
	// Balance is a decimal or 0x prefixed hex encoded number.
	Balance string        `json:"balance,omitempty"`
	Code    hexutil.Bytes `json:"code,omitempty"`
	Key     *quorum.Hash  `json:"key,omitempty"`
	Value   *quorum.Hash  `json:"value,omitempty"`
}

// Operation returns the operation described by this request.
func (r *OperationRequest) Operation() (gate.Operation, error) {
	switch r.Kind {
	case gate.KindSetBalance:
		if r.Balance == "" {
			return nil, errors.Field("Balance", errors.ErrEmpty, "required")
		}
		b, ok := math.ParseBig256(r.Balance)
		if !ok || b.Sign() < 0 {
			return nil, errors.Field("Balance", errors.ErrInput, "not an unsigned 256 bit number")
		}
		balance, overflow := uint256.FromBig(b)
		if overflow {
			return nil, errors.Field("Balance", errors.ErrOverflow, "not a 256 bit number")
		}
		return &gate.SetBalanceMsg{Target: r.Target, Balance: balance}, nil
	case gate.KindSetCode:
		return &gate.SetCodeMsg{Target: r.Target, Code: r.Code}, nil
	case gate.KindSetStorage:
		msg := &gate.SetStorageMsg{Target: r.Target}
		if r.Key != nil {
			msg.Key = *r.Key
		}
		if r.Value != nil {
			msg.Value = *r.Value
		}
		return msg, nil
	default:
		return nil, errors.Field("Kind", errors.ErrInput, "unknown operation kind %q", r.Kind)
	}
}

// SubmitRequest is an operation together with its signatures. Signatures
// are given either as raw 65 byte blobs, or as three parallel lists.
type SubmitRequest struct {
	OperationRequest
	Signatures []hexutil.Bytes `json:"signatures,omitempty"`
	V          []uint          `json:"v,omitempty"`
	R          []quorum.Hash   `json:"r,omitempty"`
	S          []quorum.Hash   `json:"s,omitempty"`
}

// Batch returns the signature batch of this request. Parallel lists are
// returned as given, even if their lengths differ.
func (r *SubmitRequest) Batch() (gate.SignatureBatch, error) {
	explicit := len(r.V) != 0 || len(r.R) != 0 || len(r.S) != 0
	if len(r.Signatures) != 0 {
		if explicit {
			return gate.SignatureBatch{}, errors.Wrap(errors.ErrInput, "signatures and v, r, s lists are exclusive")
		}
		raw := make([][]byte, len(r.Signatures))
		for i, s := range r.Signatures {
			raw[i] = s
		}
		return gate.BatchFromSignatures(raw...)
	}

	batch := gate.SignatureBatch{R: r.R, S: r.S}
	for i, v := range r.V {
		if v > 0xff {
			return gate.SignatureBatch{}, errors.Field("V", errors.ErrInput, "value %d at %d does not fit a byte", v, i)
		}
		batch.V = append(batch.V, uint8(v))
	}
	return batch, nil
}

// EventResponse is the JSON representation of an authorized command.
type EventResponse struct {
	Kind    string         `json:"kind"`
	Nonce   uint64         `json:"nonce"`
	Target  quorum.Address `json:"target"`
	Balance string         `json:"balance,omitempty"`
	Code    hexutil.Bytes  `json:"code,omitempty"`
	Key     *quorum.Hash   `json:"key,omitempty"`
	Value   *quorum.Hash   `json:"value,omitempty"`
}

// NewEventResponse returns the JSON representation of given event.
func NewEventResponse(e gate.Event) EventResponse {
	resp := EventResponse{
		Kind:   e.Kind,
		Nonce:  e.Nonce,
		Target: e.Target,
	}
	switch e.Kind {
	case gate.KindSetBalance:
		resp.Balance = e.Balance.ToBig().String()
	case gate.KindSetCode:
		resp.Code = e.Code
	case gate.KindSetStorage:
		key, value := e.Key, e.Value
		resp.Key, resp.Value = &key, &value
	}
	return resp
}

// HashResponse is returned by the operation hash endpoint.
type HashResponse struct {
	Hash quorum.Hash `json:"hash"`
}

// NonceResponse is returned by the nonce endpoint.
type NonceResponse struct {
	Nonce uint64 `json:"nonce"`
}

// DecomposeRequest is the body of the signature decompose endpoint.
type DecomposeRequest struct {
	Signature hexutil.Bytes `json:"signature"`
}

// DecomposeResponse holds the components of a signature.
type DecomposeResponse struct {
	V uint8       `json:"v"`
	R quorum.Hash `json:"r"`
	S quorum.Hash `json:"s"`
}

// EventsResponse is a page of the event log.
type EventsResponse struct {
	Events []EventResponse `json:"events"`
	// Next is the nonce to use as the start of the following page.
	Next uint64 `json:"next"`
}
