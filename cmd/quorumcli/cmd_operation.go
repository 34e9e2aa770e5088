package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/cmd/quorumd/handlers"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/x/gate"
)

// request is the document passed between pipeline commands. It is a
// submit request extended with the hash that authorities must sign.
type request struct {
	handlers.SubmitRequest
	Hash quorum.Hash `json:"hash"`
}

func readRequest(input io.Reader) (*request, error) {
	var req request
	if err := json.NewDecoder(io.LimitReader(input, maxResponseSize)).Decode(&req); err != nil {
		return nil, fmt.Errorf("cannot decode request: %s", err)
	}
	return &req, nil
}

func writeJSON(output io.Writer, v interface{}) error {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot serialize: %s", err)
	}
	return nil
}

func defaultAPI() string {
	return env("QUORUMCLI_API", "http://localhost:8000")
}

func cmdOpHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create an operation request and fetch the hash that must be signed by the
authorities in order to authorize it.

The hash is bound to the current nonce. Any other operation authorized
before this one is submitted invalidates the collected signatures.
`)
		fl.PrintDefaults()
	}
	var (
		apiFl = fl.String("api", defaultAPI(),
			"quorumd API address. You can use QUORUMCLI_API environment variable to set it.")
		kindFl    = fl.String("kind", gate.KindSetBalance, "Operation kind: SetBalance, SetCode or SetStorage.")
		balanceFl = fl.String("balance", "", "SetBalance: new balance, decimal or 0x prefixed hex.")
		codeFl    = fl.String("code", "", "SetCode: hex encoded code.")
		targetFl  quorum.Address
		keyFl     quorum.Hash
		valueFl   quorum.Hash
	)
	fl.Var(&targetFl, "target", "Address of the account the operation applies to.")
	fl.Var(&keyFl, "skey", "SetStorage: storage slot.")
	fl.Var(&valueFl, "svalue", "SetStorage: storage value.")
	fl.Parse(args)

	op := handlers.OperationRequest{
		Kind:   *kindFl,
		Target: targetFl,
	}
	switch *kindFl {
	case gate.KindSetBalance:
		op.Balance = *balanceFl
	case gate.KindSetCode:
		if *codeFl != "" {
			code, err := hexutil.Decode(*codeFl)
			if err != nil {
				return fmt.Errorf("invalid code: %s", err)
			}
			op.Code = code
		}
	case gate.KindSetStorage:
		op.Key, op.Value = &keyFl, &valueFl
	default:
		return fmt.Errorf("unknown operation kind %q", *kindFl)
	}

	var resp handlers.HashResponse
	if err := newAPIClient(*apiFl).Post("/ophash", op, &resp); err != nil {
		return err
	}
	req := request{
		SubmitRequest: handlers.SubmitRequest{OperationRequest: op},
		Hash:          resp.Hash,
	}
	return writeJSON(output, req)
}

func cmdSign(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read an operation request from standard input, sign its hash and write the
request with the signature appended to standard output.

Signatures are counted only when given in the same order as the authority
list. Sign in the authority list order.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use QUORUMCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := crypto.LoadPrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}
	req, err := readRequest(input)
	if err != nil {
		return err
	}
	if req.Hash.IsZero() {
		return fmt.Errorf("request has no hash")
	}

	for i, sig := range req.Signatures {
		v, r, s, err := crypto.DecomposeSignature(sig)
		if err != nil {
			return fmt.Errorf("signature %d: %s", i, err)
		}
		signer, err := crypto.Recover(req.Hash, v, r, s)
		if err != nil {
			return fmt.Errorf("signature %d: %s", i, err)
		}
		if signer.Equals(key.Address()) {
			return fmt.Errorf("already signed by %s", signer)
		}
	}

	sig, err := key.Sign(req.Hash)
	if err != nil {
		return fmt.Errorf("cannot sign: %s", err)
	}
	req.Signatures = append(req.Signatures, sig)
	return writeJSON(output, req)
}

func cmdDecompose(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Split a hex encoded 65 byte signature into its v, r and s components.
`)
		fl.PrintDefaults()
	}
	var (
		sigFl = fl.String("sig", "", "Hex encoded signature.")
	)
	fl.Parse(args)

	raw, err := hexutil.Decode(*sigFl)
	if err != nil {
		return fmt.Errorf("invalid signature encoding: %s", err)
	}
	v, r, s, err := crypto.DecomposeSignature(raw)
	if err != nil {
		return err
	}
	return writeJSON(output, handlers.DecomposeResponse{V: v, R: r, S: s})
}
