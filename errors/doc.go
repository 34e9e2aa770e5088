/*
Package errors implements the error taxonomy used by the quorum packages.

Each failure is categorized by one of the root errors declared in this
package. Root errors carry a unique numeric code that is safe to expose to
clients (for example as part of an HTTP response), while the wrapping layers
keep the human readable context.

Create an error instance at the point of failure with

	errors.Wrap(errors.ErrInvalidSigner, "signature 2")
	errors.ErrMalformedBatch.Newf("%d recovery ids, %d r values", len(v), len(r))

The innermost wrap attaches a stack trace. Format with %+v to print it.

Test for a category with the Is method of the root error

	if errors.ErrInsufficientSignatures.Is(err) { ... }
*/
package errors
