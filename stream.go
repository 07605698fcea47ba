package mydiff

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultChunkSize is the streaming window for Generate: diffs are
// computed over independent chunk pairs of this many bytes.
const DefaultChunkSize = 1 << 20

// Generate computes the diff between the files at oldPath and newPath
// and writes it to outPath. The header carries the digest of the old
// file; both inputs are then read in lockstep fixed-size chunks and
// each chunk pair is diffed independently, with op positions rebased to
// global old-file offsets. Memory stays O(chunkSize) regardless of
// input size; the cost is that bytes are never matched across a chunk
// boundary, so an insertion straddling a chunk edge is recorded as
// local churn there rather than globally minimally.
//
// The diff is written to a temp file and renamed into place, so outPath
// never holds a partial diff. chunkSize <= 0 selects DefaultChunkSize.
func Generate(oldPath, newPath, outPath string, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	digest, err := DigestFile(oldPath)
	if err != nil {
		return err
	}

	fOld, err := os.Open(oldPath)
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	defer fOld.Close()

	fNew, err := os.Open(newPath)
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	defer fNew.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".mydiff-*")
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name()) // no-op once renamed
	}()

	w := bufio.NewWriter(tmp)
	if err := WriteHeader(w, digest); err != nil {
		return errors.Wrap(err, "generate: write header")
	}

	ctx := newDiffContext(nil, nil)
	bufA := make([]byte, chunkSize)
	bufB := make([]byte, chunkSize)
	var records []byte
	var offset uint64

	for {
		na, err := readChunk(fOld, bufA)
		if err != nil {
			return errors.Wrapf(err, "generate: read %s", oldPath)
		}
		nb, err := readChunk(fNew, bufB)
		if err != nil {
			return errors.Wrapf(err, "generate: read %s", newPath)
		}
		if na == 0 && nb == 0 {
			break
		}

		records = records[:0]
		for _, op := range ctx.diff(bufA[:na], bufB[:nb]) {
			op.Pos += offset
			records = AppendOp(records, op)
		}
		if _, err := w.Write(records); err != nil {
			return errors.Wrap(err, "generate: write")
		}

		// Positions are old-file offsets, so only old-file bytes
		// consumed move the rebase point. A short old chunk at the tail
		// still lines the next chunk up correctly.
		offset += uint64(na)
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "generate: flush")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "generate: close")
	}
	return errors.Wrap(os.Rename(tmp.Name(), outPath), "generate")
}

// readChunk fills buf as far as the stream allows: a full chunk, a
// short tail, or 0 bytes at EOF.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

// Apply replays the diff at diffPath against the file at oldPath,
// writing the reconstructed target to outPath. Operations stream off
// disk one at a time and untouched source spans are copied in chunks,
// so memory stays bounded for any file size.
//
// Operations are assumed sorted and non-overlapping; Apply does not
// validate ordering or provenance. Run Validate and VerifySource first.
func Apply(oldPath, diffPath, outPath string) error {
	fDiff, err := os.Open(diffPath)
	if err != nil {
		return errors.Wrap(err, "apply")
	}
	defer fDiff.Close()

	br := bufio.NewReader(fDiff)
	if _, err := ReadHeader(br); err != nil {
		return err
	}

	fOld, err := os.Open(oldPath)
	if err != nil {
		return errors.Wrap(err, "apply")
	}
	defer fOld.Close()

	fOut, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "apply")
	}
	defer fOut.Close()

	w := bufio.NewWriter(fOut)
	dec := NewOpReader(br)
	var cursor uint64

	for {
		op, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		// Untouched source bytes before the op copy through verbatim.
		if op.Pos > cursor {
			if _, err := io.CopyN(w, fOld, int64(op.Pos-cursor)); err != nil {
				return errors.Wrap(err, "apply: copy source")
			}
			cursor = op.Pos
		}

		switch op.Kind {
		case OpInsert:
			if _, err := w.Write(op.Payload); err != nil {
				return errors.Wrap(err, "apply: write")
			}
		case OpDelete:
			if _, err := fOld.Seek(int64(op.Len), io.SeekCurrent); err != nil {
				return errors.Wrap(err, "apply: seek past delete")
			}
			cursor += op.Len
		case OpChange:
			if _, err := w.Write(op.Payload); err != nil {
				return errors.Wrap(err, "apply: write")
			}
			if _, err := fOld.Seek(int64(len(op.Payload)), io.SeekCurrent); err != nil {
				return errors.Wrap(err, "apply: seek past change")
			}
			cursor += uint64(len(op.Payload))
		default:
			return errors.Errorf("apply: unknown op kind %d", op.Kind)
		}
	}

	// Trailing untouched suffix.
	if _, err := io.Copy(w, fOld); err != nil {
		return errors.Wrap(err, "apply: copy tail")
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "apply: flush")
	}
	return errors.Wrap(fOut.Close(), "apply")
}
