package paramfmt

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/sketchparams/internal/invariant"
)

const (
	// Magic is the file magic number "SKPM" (4 bytes)
	Magic = "SKPM"

	// Version is the format version (uint16, little-endian)
	// 0x0001 = version 1.0
	// Breaking changes increment the high byte, additions the low byte
	Version uint16 = 0x0001

	// preambleLen is MAGIC(4) | VERSION(2) | FLAGS(2) | BODYLEN(4)
	preambleLen = 12

	// maxBodyLen bounds reads of untrusted files
	maxBodyLen = 16 * 1024 * 1024
)

// Write writes doc to w and returns the BLAKE2b-256 digest of the body.
func Write(w io.Writer, doc *Document) ([32]byte, error) {
	invariant.NotNil(w, "w")
	invariant.Precondition(doc != nil, "doc must not be nil")
	wr := &Writer{w: w}
	return wr.WriteDocument(doc)
}

// Writer handles writing documents to binary format.
type Writer struct {
	w io.Writer
}

// WriteDocument writes the document to the underlying writer.
// Format: MAGIC(4) | VERSION(2) | FLAGS(2) | BODYLEN(4) | BODY
func (wr *Writer) WriteDocument(doc *Document) ([32]byte, error) {
	if err := doc.Validate(); err != nil {
		return [32]byte{}, fmt.Errorf("invalid document: %w", err)
	}

	body, err := EncodeBody(doc.Params)
	if err != nil {
		return [32]byte{}, err
	}
	if len(body) > maxBodyLen {
		return [32]byte{}, fmt.Errorf("body length %d exceeds maximum %d", len(body), maxBodyLen)
	}

	var preamble [preambleLen]byte
	copy(preamble[0:4], Magic)
	binary.LittleEndian.PutUint16(preamble[4:6], Version)
	binary.LittleEndian.PutUint16(preamble[6:8], uint16(doc.Flags))
	binary.LittleEndian.PutUint32(preamble[8:12], uint32(len(body)))

	if _, err := wr.w.Write(preamble[:]); err != nil {
		return [32]byte{}, err
	}
	if _, err := wr.w.Write(body); err != nil {
		return [32]byte{}, err
	}

	return blake2b.Sum256(body), nil
}
