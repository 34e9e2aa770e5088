package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/gate"
	"github.com/tendermint/tendermint/libs/log"
)

// Gate is implemented by gate.Engine.
type Gate interface {
	Nonce() (uint64, error)
	OpHash(gate.Operation) (quorum.Hash, error)
	Submit(context.Context, gate.Operation, gate.SignatureBatch) (*gate.Event, error)
	Events(from uint64, limit int) ([]gate.Event, error)
}

var _ Gate = (*gate.Engine)(nil)

// maxBodySize limits request bodies. A SetCode operation can carry a whole
// contract.
const maxBodySize = 4 << 20

type InfoHandler struct{}

func (h *InfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	JSONResp(w, http.StatusOK, struct {
		Version   string `json:"version"`
		GitCommit string `json:"git_commit"`
	}{
		Version:   quorum.Version(),
		GitCommit: quorum.GitCommit,
	})
}

type NonceHandler struct {
	Gate Gate
}

func (h *NonceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		JSONErr(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	n, err := h.Gate.Nonce()
	if err != nil {
		jsonError(w, r, err)
		return
	}
	JSONResp(w, http.StatusOK, NonceResponse{Nonce: n})
}

// OpHashHandler returns the hash that authorities must sign in order to
// authorize the operation at the current nonce.
type OpHashHandler struct {
	Gate Gate
}

func (h *OpHashHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req OperationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	op, err := req.Operation()
	if err != nil {
		jsonError(w, r, err)
		return
	}
	hash, err := h.Gate.OpHash(op)
	if err != nil {
		jsonError(w, r, err)
		return
	}
	JSONResp(w, http.StatusOK, HashResponse{Hash: hash})
}

type SubmitHandler struct {
	Gate Gate
}

func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	op, err := req.Operation()
	if err != nil {
		jsonError(w, r, err)
		return
	}
	batch, err := req.Batch()
	if err != nil {
		jsonError(w, r, err)
		return
	}
	ev, err := h.Gate.Submit(r.Context(), op, batch)
	if err != nil {
		jsonError(w, r, err)
		return
	}
	JSONResp(w, http.StatusOK, NewEventResponse(*ev))
}

// DecomposeHandler splits a raw signature into its components.
type DecomposeHandler struct{}

func (h *DecomposeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req DecomposeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v, rr, s, err := crypto.DecomposeSignature(req.Signature)
	if err != nil {
		jsonError(w, r, err)
		return
	}
	JSONResp(w, http.StatusOK, DecomposeResponse{V: v, R: rr, S: s})
}

// EventsHandler returns the event log, paginated by nonce.
type EventsHandler struct {
	Gate Gate
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		JSONErr(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	q := r.URL.Query()
	var from uint64
	if s := q.Get("from"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			JSONErr(w, http.StatusBadRequest, "from must be a nonce value")
			return
		}
		from = n
	}
	limit := gate.DefaultEventsLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 1000 {
			JSONErr(w, http.StatusBadRequest, "limit must be a number between 1 and 1000")
			return
		}
		limit = n
	}

	events, err := h.Gate.Events(from, limit)
	if err != nil {
		jsonError(w, r, err)
		return
	}
	resp := EventsResponse{
		Events: make([]EventResponse, 0, len(events)),
		Next:   from,
	}
	for _, e := range events {
		resp.Events = append(resp.Events, NewEventResponse(e))
		resp.Next = e.Nonce + 1
	}
	JSONResp(w, http.StatusOK, resp)
}

// DefaultHandler is used to handle the request that no other handler wants.
type DefaultHandler struct{}

func (h *DefaultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// No trailing slash.
	if len(r.URL.Path) > 1 && r.URL.Path[len(r.URL.Path)-1] == '/' {
		path := strings.TrimRight(r.URL.Path, "/")
		JSONRedirect(w, http.StatusPermanentRedirect, path)
		return
	}
	JSONErr(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// decodeBody reads the JSON body of a POST request into dest. It writes
// the error response and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if r.Method != "POST" {
		JSONErr(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return false
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dest); err != nil {
		JSONErr(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// ErrorStatus returns the HTTP status code that represents given error.
func ErrorStatus(err error) int {
	switch {
	case errors.ErrMalformedSignature.Is(err),
		errors.ErrMalformedBatch.Is(err),
		errors.ErrInvalidSigner.Is(err),
		errors.ErrInvalidMsg.Is(err),
		errors.ErrInput.Is(err),
		errors.ErrEmpty.Is(err):
		return http.StatusBadRequest
	case errors.ErrInsufficientSignatures.Is(err):
		return http.StatusForbidden
	case errors.ErrOverflow.Is(err):
		return http.StatusConflict
	case errors.ErrDirectoryUnavailable.Is(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// jsonError writes the error response. Internal errors are logged and
// redacted.
func jsonError(w http.ResponseWriter, r *http.Request, err error) {
	code := ErrorStatus(err)
	if code == http.StatusInternalServerError {
		quorum.GetLogger(r.Context()).Error("request failed", "path", r.URL.Path, "err", err.Error())
	}
	JSONResp(w, code, struct {
		Errors []string `json:"errors"`
		Code   uint32   `json:"code"`
	}{
		Errors: []string{errors.Redact(err)},
		Code:   errors.Code(err),
	})
}

// JSONResp write content as JSON encoded response.
func JSONResp(w http.ResponseWriter, code int, content interface{}) {
	b, err := json.MarshalIndent(content, "", "\t")
	if err != nil {
		code = http.StatusInternalServerError
		b = []byte(`{"errors":["Internal Server Error"]}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// JSONErr write single error as JSON encoded response.
func JSONErr(w http.ResponseWriter, code int, errText string) {
	JSONErrs(w, code, []string{errText})
}

// JSONErrs write multiple errors as JSON encoded response.
func JSONErrs(w http.ResponseWriter, code int, errs []string) {
	resp := struct {
		Errors []string `json:"errors"`
	}{
		Errors: errs,
	}
	JSONResp(w, code, resp)
}

// JSONRedirect return redirect response, but with JSON formatted body.
func JSONRedirect(w http.ResponseWriter, code int, urlStr string) {
	w.Header().Set("Location", urlStr)
	var content = struct {
		Code     int
		Location string
	}{
		Code:     code,
		Location: urlStr,
	}
	JSONResp(w, code, content)
}

// WithLogger attaches the logger to the context of every request and
// logs each request at debug level.
func WithLogger(h http.Handler, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := quorum.WithLogger(r.Context(), logger.With("path", r.URL.Path))
		quorum.GetLogger(ctx).Debug("request", "method", r.Method, "remote", r.RemoteAddr)
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}
