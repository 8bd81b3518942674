package gocad

import "errors"

// ErrMalformedHeader indicates the leading "GOCAD Model3d" line is missing
// or malformed.
var ErrMalformedHeader = errors.New("gocad: malformed header")

// ErrUnexpectedSection indicates a section keyword appeared where the
// grammar does not allow it (e.g. a VRTX line before any TFACE block).
var ErrUnexpectedSection = errors.New("gocad: unexpected section")

// ErrMalformedLine indicates a line within a recognized section could not
// be parsed (wrong field count or non-numeric field).
var ErrMalformedLine = errors.New("gocad: malformed line")
