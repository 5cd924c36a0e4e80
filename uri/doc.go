// Package uri renders BIP 21 payment request URIs.
//
// # Overview
//
// A payment URI consists of the "bitcoin" scheme, an address and optional query parameters:
//
//	bitcoin:<address>[?amount=<btc>][&label=<text>][&message=<text>][&<key>=<value>...]
//
// The [URI] type holds the components and renders them with proper percent-encoding:
//
//	u := uri.New(uri.Addr("bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"))
//	u.Amount = uri.Sat(1_000_000)
//	u.Label = uri.StringParam("Lunch")
//	fmt.Println(u) // bitcoin:bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq?amount=0.01&label=Lunch
//
// # Encoding
//
// Parameter values are percent-encoded, every byte except ALPHA, DIGIT and
// "-" "." "_" "~" "!" "$" "'" "(" ")" "*" "+" "," ";" ":" "@" "/" "?" is written as "%XX".
// "&" and "=" are BIP 21 separators and are always encoded inside values.
//
// Values can be supplied as raw text ([StringParam]), raw bytes ([BytesParam]) or
// as an already percent-encoded source ([EncodedParam]), e.g. sliced out of a parsed URI.
// Encoded sources are decoded and encoded again, so the output is canonical.
//
// # Extra parameters
//
// Any type implementing [ParamsSerializer] can contribute additional parameters.
// [KVs] keeps the given order, [Values] renders keys in lexicographical order,
// [Pairs] adapts arbitrary [iter.Seq2] iterators.
//
// Keys are written as is. A key containing "=" would break the field boundary,
// so rendering panics with [*KeyError]. Use [URI.Validate] when keys come from untrusted input.
//
// # Compact form
//
// [RenderOptions.Compact] (or the "%#s" verb) asks the address to render its QR-code-optimized form.
// [BTCAddress] upper-cases bech32 addresses in this mode.
//
// # Thread Safety
//
// Rendering does not modify the URI, so concurrent rendering of the same URI is safe
// as long as its extras iterator is. The output writer is not synchronized.
package uri
