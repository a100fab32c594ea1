package domain

import "strconv"

// MediaKind declares what a source file claims to be.
type MediaKind string

const (
	MediaKindPDF   MediaKind = "pdf"
	MediaKindImage MediaKind = "image"
)

// SourceFile is an uploaded file held fully in memory for one operation.
// It is owned by the handler invocation that receives it and is never
// retained after the operation completes.
type SourceFile struct {
	Name string
	Kind MediaKind
	Data []byte
}

// Options is a flat mapping of option name to raw form value. Range and type
// coercion happens through the typed getters; services assume valid ranges.
type Options map[string]string

// String returns the option value, or def when absent or empty.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok && v != "" {
		return v
	}
	return def
}

// Int returns the option parsed as an integer, or def when absent or unparsable.
func (o Options) Int(key string, def int) int {
	v, ok := o[key]
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// IntInRange returns the option parsed as an integer and clamped to [lo, hi].
func (o Options) IntInRange(key string, def, lo, hi int) int {
	n := o.Int(key, def)
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// OperationResult is the complete output of one transformation: a byte buffer
// with its media type and a suggested download filename.
type OperationResult struct {
	Data      []byte
	MediaType string
	Filename  string
}
