package main

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/iov-one/quorum/cmd/quorumd/handlers"
)

func cmdSubmit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a signed operation request from standard input and submit it. The
authorized command is written out.

Make sure to collect enough signatures before submitting the request.
`)
		fl.PrintDefaults()
	}
	var (
		apiFl = fl.String("api", defaultAPI(),
			"quorumd API address. You can use QUORUMCLI_API environment variable to set it.")
	)
	fl.Parse(args)

	req, err := readRequest(input)
	if err != nil {
		return err
	}
	var ev handlers.EventResponse
	if err := newAPIClient(*apiFl).Post("/submit", req.SubmitRequest, &ev); err != nil {
		return fmt.Errorf("cannot submit: %s", err)
	}
	return writeJSON(output, ev)
}

func cmdNonce(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the current nonce of the gate.
`)
		fl.PrintDefaults()
	}
	var (
		apiFl = fl.String("api", defaultAPI(),
			"quorumd API address. You can use QUORUMCLI_API environment variable to set it.")
	)
	fl.Parse(args)

	var resp handlers.NonceResponse
	if err := newAPIClient(*apiFl).Get("/nonce", &resp); err != nil {
		return err
	}
	_, err := fmt.Fprintln(output, resp.Nonce)
	return err
}

func cmdEvents(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print authorized commands, starting with the one authorized at given nonce.
`)
		fl.PrintDefaults()
	}
	var (
		apiFl = fl.String("api", defaultAPI(),
			"quorumd API address. You can use QUORUMCLI_API environment variable to set it.")
		fromFl  = fl.Uint64("from", 0, "Nonce of the first command.")
		limitFl = fl.Int("limit", 100, "Maximum number of commands to print.")
	)
	fl.Parse(args)

	q := url.Values{}
	q.Set("from", strconv.FormatUint(*fromFl, 10))
	q.Set("limit", strconv.Itoa(*limitFl))

	var resp handlers.EventsResponse
	if err := newAPIClient(*apiFl).Get("/events?"+q.Encode(), &resp); err != nil {
		return err
	}
	return writeJSON(output, resp)
}
