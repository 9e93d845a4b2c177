// Package urlparse decomposes a raw URL string into its structural
// parts: scheme, optional credentials, host, path, query parameters,
// and fragment.
//
// The decomposition is a strict left-to-right pipeline. Optional
// components (credentials, path, query, fragment) degrade to "absent"
// when their delimiter is missing; scheme and host are mandatory.
// No percent-decoding or RFC-level validation is performed — the
// package preserves the input verbatim, split at component boundaries.
package urlparse
