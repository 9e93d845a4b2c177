package urlparse

import "strings"

// Scheme classifies a URL scheme token into a closed set. Unrecognized
// tokens map to SchemeUnknown rather than failing the parse, so unusual
// schemes still pass through structural decomposition.
//
// The zero value is SchemeHTTPS: a URL constructed without a
// recognizable scheme token falls back to HTTPS.
type Scheme int

const (
	SchemeHTTPS Scheme = iota
	SchemeHTTP
	SchemeFTP
	SchemeSFTP
	SchemeTFTP
	SchemeTelnet
	SchemeLDAP
	SchemeWS
	SchemeWSS
	SchemeUnknown
)

// SchemeFromString classifies a scheme token case-insensitively.
func SchemeFromString(s string) Scheme {
	switch strings.ToLower(s) {
	case "https":
		return SchemeHTTPS
	case "http":
		return SchemeHTTP
	case "ftp":
		return SchemeFTP
	case "sftp":
		return SchemeSFTP
	case "tftp":
		return SchemeTFTP
	case "telnet":
		return SchemeTelnet
	case "ldap":
		return SchemeLDAP
	case "ws":
		return SchemeWS
	case "wss":
		return SchemeWSS
	default:
		return SchemeUnknown
	}
}

func (s Scheme) String() string {
	switch s {
	case SchemeHTTPS:
		return "https"
	case SchemeHTTP:
		return "http"
	case SchemeFTP:
		return "ftp"
	case SchemeSFTP:
		return "sftp"
	case SchemeTFTP:
		return "tftp"
	case SchemeTelnet:
		return "telnet"
	case SchemeLDAP:
		return "ldap"
	case SchemeWS:
		return "ws"
	case SchemeWSS:
		return "wss"
	default:
		return "unknown"
	}
}
