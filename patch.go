package mydiff

import (
	"bytes"
	"fmt"
)

// Patch applies ops to src in memory and returns the reconstructed
// sequence. Ops must be sorted by ascending, non-overlapping source
// spans that stay inside src; a violation is a caller error and fails
// fast with no partial output. For file-sized inputs use Apply.
func Patch(src []byte, ops []Op) ([]byte, error) {
	var out bytes.Buffer
	var cursor uint64

	for i, op := range ops {
		if op.Pos < cursor {
			return nil, fmt.Errorf("op %d (%s): position overlaps source consumed through %d", i, op, cursor)
		}
		if op.Pos+op.SourceSpan() > uint64(len(src)) {
			return nil, fmt.Errorf("op %d (%s): span exceeds source length %d", i, op, len(src))
		}

		out.Write(src[cursor:op.Pos])
		cursor = op.Pos

		switch op.Kind {
		case OpInsert:
			out.Write(op.Payload)
		case OpDelete:
			cursor += op.Len
		case OpChange:
			out.Write(op.Payload)
			cursor += uint64(len(op.Payload))
		default:
			return nil, fmt.Errorf("op %d: unknown kind %d", i, op.Kind)
		}
	}

	out.Write(src[cursor:])
	return out.Bytes(), nil
}
