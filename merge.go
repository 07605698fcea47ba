package mydiff

// Post-processing over the raw op list, two single scans: mergeOps
// coalesces runs of primitive steps, consolidateOps fuses adjacent
// delete+insert pairs into Change operations. Both preserve apply
// semantics and the sorted, non-overlapping invariant.

// mergeOps coalesces, in place, runs of Inserts targeting the identical
// position (payloads concatenate in emission order) and runs of Deletes
// whose spans are contiguous (lengths sum).
func mergeOps(ops []Op) []Op {
	out := ops[:0]
	for _, op := range ops {
		if n := len(out); n > 0 {
			last := &out[n-1]
			switch {
			case op.Kind == OpInsert && last.Kind == OpInsert && op.Pos == last.Pos:
				last.Payload = append(last.Payload, op.Payload...)
				continue
			case op.Kind == OpDelete && last.Kind == OpDelete && op.Pos == last.Pos+last.Len:
				last.Len += op.Len
				continue
			}
		}
		out = append(out, op)
	}
	return out
}

// consolidateOps fuses a Delete immediately followed by the Insert
// sitting at the deleted span's end into a Change over their common
// prefix, re-emitting any longer remainder at the advanced position.
// This models "replace N bytes" as one semantic edit.
func consolidateOps(ops []Op) []Op {
	if len(ops) == 0 {
		return nil
	}

	out := make([]Op, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		op := ops[i]
		if op.Kind == OpDelete && i+1 < len(ops) {
			if next := ops[i+1]; next.Kind == OpInsert && next.Pos == op.Pos+op.Len {
				fused := op.Len
				if n := uint64(len(next.Payload)); n < fused {
					fused = n
				}
				out = append(out, Op{Kind: OpChange, Pos: op.Pos, Payload: next.Payload[:fused:fused]})
				switch {
				case op.Len > fused:
					out = append(out, Op{Kind: OpDelete, Pos: op.Pos + fused, Len: op.Len - fused})
				case uint64(len(next.Payload)) > fused:
					out = append(out, Op{Kind: OpInsert, Pos: op.Pos + fused, Payload: next.Payload[fused:]})
				}
				i++
				continue
			}
		}
		out = append(out, op)
	}
	return out
}
