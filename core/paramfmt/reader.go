package paramfmt

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/sketchparams/internal/invariant"
)

// Read reads a document from r and returns it with its digest.
func Read(r io.Reader) (*Document, [32]byte, error) {
	invariant.NotNil(r, "r")
	rd := &Reader{r: r}
	return rd.ReadDocument()
}

// Reader handles reading documents from binary format.
type Reader struct {
	r io.Reader
}

// ReadDocument reads the document from the underlying reader.
func (rd *Reader) ReadDocument() (*Document, [32]byte, error) {
	var preamble [preambleLen]byte
	if _, err := io.ReadFull(rd.r, preamble[:]); err != nil {
		return nil, [32]byte{}, fmt.Errorf("read preamble: %w", err)
	}

	magic := string(preamble[0:4])
	if magic != Magic {
		return nil, [32]byte{}, fmt.Errorf("invalid magic: got %q, expected %q", magic, Magic)
	}

	version := binary.LittleEndian.Uint16(preamble[4:6])
	if version != Version {
		return nil, [32]byte{}, fmt.Errorf("unsupported version: got 0x%04x, expected 0x%04x", version, Version)
	}

	flags := Flags(binary.LittleEndian.Uint16(preamble[6:8]))

	// Validate length before allocating
	bodyLen := binary.LittleEndian.Uint32(preamble[8:12])
	if bodyLen > maxBodyLen {
		return nil, [32]byte{}, fmt.Errorf("body length %d exceeds maximum %d", bodyLen, maxBodyLen)
	}

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(rd.r, body); err != nil {
		return nil, [32]byte{}, fmt.Errorf("read body: %w", err)
	}

	params, err := DecodeBody(body)
	if err != nil {
		return nil, [32]byte{}, fmt.Errorf("parse body: %w", err)
	}

	doc := &Document{Flags: flags, Params: params}
	if err := doc.Validate(); err != nil {
		return nil, [32]byte{}, fmt.Errorf("invalid document: %w", err)
	}
	return doc, blake2b.Sum256(body), nil
}
