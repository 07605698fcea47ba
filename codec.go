package mydiff

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Diff file layout (all integers unsigned big-endian):
//
//	offset 0..6   : magic literal "MYDIFF"
//	offset 6..38  : 32-byte digest of the source file at diff time
//	offset 38..EOF: repeated operation records:
//	    byte 0              : opcode (0x01 Insert, 0x02 Delete, 0x03 Change)
//	    bytes 1..9          : position
//	    bytes 9..17         : payload length (Insert/Change) or skip count (Delete)
//	    bytes 17..17+length : payload (absent for Delete)
//
// There is no trailing length prefix or terminator: EOF at a record
// boundary ends the stream.

const (
	// Magic identifies a diff file.
	Magic = "MYDIFF"

	// DigestSize is the byte length of the header digest.
	DigestSize = 32

	// HeaderSize is the fixed length of magic plus digest.
	HeaderSize = len(Magic) + DigestSize

	recordHeaderSize = 1 + 8 + 8
)

const (
	opcodeInsert byte = 0x01
	opcodeDelete byte = 0x02
	opcodeChange byte = 0x03
)

var (
	// ErrBadMagic means the file does not start with the magic literal.
	ErrBadMagic = errors.New("mydiff: bad magic")
	// ErrTruncated means the file ends inside a record or the header.
	ErrTruncated = errors.New("mydiff: truncated diff")
	// ErrUnknownOpcode means a record carries an opcode outside the
	// three known values.
	ErrUnknownOpcode = errors.New("mydiff: unknown opcode")
	// ErrDigestMismatch means the file to be patched is not the one the
	// diff was generated from.
	ErrDigestMismatch = errors.New("mydiff: source digest mismatch")
)

// FormatError reports a structural problem in a diff file, pinned to
// the byte offset of the failing datum. Index is the record index, or
// -1 when the header itself is at fault.
type FormatError struct {
	Offset int64
	Index  int
	Err    error
}

func (e *FormatError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v (at byte %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (record %d, at byte %d)", e.Err, e.Index, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// AppendOp appends the wire encoding of op to dst and returns the
// extended slice. Encoding an op of unknown kind is a programming
// error and panics.
func AppendOp(dst []byte, op Op) []byte {
	var code byte
	var length uint64
	var payload []byte

	switch op.Kind {
	case OpInsert:
		code, payload = opcodeInsert, op.Payload
		length = uint64(len(payload))
	case OpDelete:
		code, length = opcodeDelete, op.Len
	case OpChange:
		code, payload = opcodeChange, op.Payload
		length = uint64(len(payload))
	default:
		panic(fmt.Sprintf("mydiff: encode of unknown op kind %d", op.Kind))
	}

	dst = append(dst, code)
	dst = binary.BigEndian.AppendUint64(dst, op.Pos)
	dst = binary.BigEndian.AppendUint64(dst, length)
	return append(dst, payload...)
}

// EncodeOps serializes an op list back-to-back, preserving order.
func EncodeOps(ops []Op) []byte {
	var buf []byte
	for _, op := range ops {
		buf = AppendOp(buf, op)
	}
	return buf
}

// DecodeOps decodes a buffer of back-to-back records, the inverse of
// EncodeOps. The buffer must not include the file header.
func DecodeOps(buf []byte) ([]Op, error) {
	d := NewOpReader(bytes.NewReader(buf))
	d.off = 0

	var ops []Op
	for {
		op, err := d.Next()
		if err == io.EOF {
			return ops, nil
		}
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
}

// WriteHeader writes the magic literal and the source digest.
func WriteHeader(w io.Writer, digest [DigestSize]byte) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return err
	}
	_, err := w.Write(digest[:])
	return err
}

// ReadHeader consumes the header, verifying the magic and returning
// the stored source digest.
func ReadHeader(r io.Reader) ([DigestSize]byte, error) {
	var digest [DigestSize]byte
	var head [HeaderSize]byte

	n, err := io.ReadFull(r, head[:])
	if err != nil {
		return digest, &FormatError{Offset: int64(n), Index: -1, Err: ErrTruncated}
	}
	if string(head[:len(Magic)]) != Magic {
		return digest, &FormatError{Offset: 0, Index: -1, Err: ErrBadMagic}
	}

	copy(digest[:], head[len(Magic):])
	return digest, nil
}

// OpReader streams operations out of a diff file one record at a time,
// so a diff larger than memory can be applied. The underlying reader
// must be positioned at the first record, just past the header.
type OpReader struct {
	r   *bufio.Reader
	off int64 // offset of the next unread byte, for error reporting
	idx int   // index of the next record
}

// NewOpReader returns a reader decoding records from r.
func NewOpReader(r io.Reader) *OpReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &OpReader{r: br, off: int64(HeaderSize)}
}

// Next decodes one operation. It returns io.EOF exactly at a record
// boundary; a record cut short — header bytes missing, or fewer payload
// bytes than declared — is a *FormatError wrapping ErrTruncated, never
// silently tolerated.
func (d *OpReader) Next() (Op, error) {
	var hdr [recordHeaderSize]byte
	if _, err := io.ReadFull(d.r, hdr[:]); err != nil {
		if err == io.EOF {
			return Op{}, io.EOF
		}
		return Op{}, &FormatError{Offset: d.off, Index: d.idx, Err: ErrTruncated}
	}

	op := Op{Pos: binary.BigEndian.Uint64(hdr[1:9])}
	length := binary.BigEndian.Uint64(hdr[9:17])

	switch hdr[0] {
	case opcodeInsert, opcodeChange:
		payload := make([]byte, length)
		if _, err := io.ReadFull(d.r, payload); err != nil {
			return Op{}, &FormatError{Offset: d.off, Index: d.idx, Err: ErrTruncated}
		}
		op.Payload = payload
		op.Kind = OpInsert
		if hdr[0] == opcodeChange {
			op.Kind = OpChange
		}
	case opcodeDelete:
		op.Kind = OpDelete
		op.Len = length
	default:
		return Op{}, &FormatError{
			Offset: d.off,
			Index:  d.idx,
			Err:    fmt.Errorf("%w 0x%02x", ErrUnknownOpcode, hdr[0]),
		}
	}

	d.off += recordHeaderSize + int64(len(op.Payload))
	d.idx++
	return op, nil
}
