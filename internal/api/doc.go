// Package api is the request gateway to the fee-recommendation backend.
//
// Client issues plain GET requests against a fixed base URL and decodes
// the JSON responses into immutable record types. Optional fields use
// Optional[T] so that callers branch on presence rather than on zero
// values.
//
// Every failure between issuing a request and decoding its body is a
// *TransportError; client-side validation failures are *InvalidInput.
// No request is ever retried.
package api
