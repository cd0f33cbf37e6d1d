package charset

import "errors"

// ErrUnknownLabel means a label matched neither a WHATWG label nor an IANA
// name supported by golang.org/x/text.
var ErrUnknownLabel = errors.New("unknown encoding label")
