package mydiff

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Validate structurally checks the diff file at diffPath: the magic
// literal, every opcode, and that every declared payload length fits
// within the remaining file size. Payloads are skipped, not decoded, so
// validation is cheap even for large diffs. A failure is reported as a
// *FormatError carrying the exact failing byte offset and record index.
func Validate(diffPath string) error {
	f, err := os.Open(diffPath)
	if err != nil {
		return errors.Wrap(err, "validate")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "validate")
	}
	size := info.Size()

	br := bufio.NewReader(f)
	if _, err := ReadHeader(br); err != nil {
		return err
	}

	off := int64(HeaderSize)
	var hdr [recordHeaderSize]byte

	for idx := 0; ; idx++ {
		if _, err := io.ReadFull(br, hdr[:]); err != nil {
			if err == io.EOF {
				return nil // clean end at a record boundary
			}
			return &FormatError{Offset: off, Index: idx, Err: ErrTruncated}
		}

		length := binary.BigEndian.Uint64(hdr[9:17])
		switch hdr[0] {
		case opcodeInsert, opcodeChange:
		case opcodeDelete:
			length = 0 // no payload follows
		default:
			return &FormatError{
				Offset: off,
				Index:  idx,
				Err:    fmt.Errorf("%w 0x%02x", ErrUnknownOpcode, hdr[0]),
			}
		}

		off += recordHeaderSize
		if length > uint64(size-off) {
			return &FormatError{Offset: off, Index: idx, Err: ErrTruncated}
		}
		if _, err := br.Discard(int(length)); err != nil {
			return &FormatError{Offset: off, Index: idx, Err: ErrTruncated}
		}
		off += int64(length)
	}
}

// VerifySource checks provenance: the digest stored in the diff header
// must match the current content of the file about to be patched. A
// mismatch means the diff was generated against a different version of
// the source and must not be applied.
func VerifySource(oldPath, diffPath string) error {
	f, err := os.Open(diffPath)
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	defer f.Close()

	want, err := ReadHeader(f)
	if err != nil {
		return err
	}

	got, err := DigestFile(oldPath)
	if err != nil {
		return err
	}
	if !bytes.Equal(got[:], want[:]) {
		return errors.Wrapf(ErrDigestMismatch,
			"%s is not the file this diff was generated from (digest %x, header %x)",
			oldPath, got, want)
	}
	return nil
}
