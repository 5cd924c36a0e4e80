// Package constraints provides type constraints shared by the internal packages.
package constraints

// Byteseq represents a generic byte string, either string or []byte.
type Byteseq interface {
	~string | ~[]byte
}
