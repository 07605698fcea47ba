// Package mydiff computes a minimal, byte-granular edit script between
// two binary inputs and replays it later to reconstruct the target.
//
// The search is Myers' O((N+M)D) algorithm in its linear-space variant:
// two breadth-first frontiers advance from opposite corners of the edit
// graph until they cross on a middle snake, and the surrounding region
// is resolved by divide-and-conquer. Raw single-byte steps are then
// coalesced into Insert/Delete/Change operations, serialized to a
// compact binary format, and applied back against the source.
//
// Files larger than memory are handled by diffing fixed-size chunk
// pairs independently (Generate) and by streaming operations one record
// at a time during reconstruction (OpReader, Apply). Chunking trades
// optimality for bounded memory: bytes are never matched across a chunk
// boundary.
package mydiff

import "fmt"

// OpKind identifies the type of edit operation.
type OpKind int

const (
	// OpInsert inserts payload bytes before a source position.
	OpInsert OpKind = iota + 1
	// OpDelete skips a span of source bytes.
	OpDelete
	// OpChange replaces a span of source bytes with an equally long
	// payload (a fused delete+insert).
	OpChange
)

// String returns a string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	case OpChange:
		return "Change"
	default:
		return "Unknown"
	}
}

// Op is a single edit operation. Pos is the offset into the source
// sequence at the moment the op applies. Payload carries the inserted
// or replacement bytes for Insert/Change; Len is the number of source
// bytes skipped by Delete.
//
// A well-formed operation list is sorted by ascending, non-overlapping
// source spans. Both the patcher and the wire encoder rely on this;
// violating it is a caller error.
type Op struct {
	Kind    OpKind
	Pos     uint64
	Len     uint64
	Payload []byte
}

// SourceSpan returns the number of source bytes the op consumes.
func (op Op) SourceSpan() uint64 {
	switch op.Kind {
	case OpDelete:
		return op.Len
	case OpChange:
		return uint64(len(op.Payload))
	default:
		return 0
	}
}

// String returns a compact description of the op.
func (op Op) String() string {
	switch op.Kind {
	case OpDelete:
		return fmt.Sprintf("Delete(%d, %d)", op.Pos, op.Len)
	case OpInsert, OpChange:
		return fmt.Sprintf("%s(%d, %d bytes)", op.Kind, op.Pos, len(op.Payload))
	default:
		return fmt.Sprintf("Unknown(%d)", op.Pos)
	}
}
