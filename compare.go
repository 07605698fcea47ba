package mydiff

// Diff computes the shortest edit script turning a into b, as a list of
// operations sorted by ascending, non-overlapping source position.
// Adjacent primitive steps are coalesced, and a deletion directly
// followed by an insertion over the same span is fused into a Change.
//
// Empty and identical inputs both produce an empty list. Recursion
// depth grows with the edit distance of the pair; callers diffing very
// large fully-divergent inputs should go through Generate, whose
// chunking caps the box size.
func Diff(a, b []byte) []Op {
	return newDiffContext(a, b).diff(a, b)
}

// EditDistance returns the length of the shortest edit script between
// a and b, counted in single-byte inserts and deletes. A Change is a
// fused delete+insert and counts twice its payload length, so the
// distance keeps the parity of len(a)+len(b).
func EditDistance(a, b []byte) uint64 {
	var d uint64
	for _, op := range Diff(a, b) {
		switch op.Kind {
		case OpInsert:
			d += uint64(len(op.Payload))
		case OpDelete:
			d += op.Len
		case OpChange:
			d += 2 * uint64(len(op.Payload))
		}
	}
	return d
}

// diff runs one comparison on an already-allocated context. The
// returned ops own their payload bytes; the op slice itself is rebuilt
// per call so the context can be reused for the next chunk pair.
func (ctx *diffContext) diff(a, b []byte) []Op {
	ctx.reset(a, b)
	ctx.findPath(0, 0, len(a), len(b))
	return consolidateOps(mergeOps(ctx.ops))
}

// findPath resolves the box [left,right) x [top,bottom) by recursive
// divide-and-conquer, appending primitive ops in ascending source
// position order: left sub-box first, then the snake's single step,
// then the right sub-box.
func (ctx *diffContext) findPath(left, top, right, bottom int) {
	bx := box{left: left, top: top, right: right, bottom: bottom}

	s, ok := ctx.midpoint(bx)
	if !ok {
		return
	}

	// Degenerate boxes are a whole-span insert or delete.
	if bx.width() == 0 {
		payload := make([]byte, bx.height())
		copy(payload, ctx.b[bx.top:bx.bottom])
		ctx.ops = append(ctx.ops, Op{Kind: OpInsert, Pos: uint64(bx.left), Payload: payload})
		return
	}
	if bx.height() == 0 {
		ctx.ops = append(ctx.ops, Op{Kind: OpDelete, Pos: uint64(bx.left), Len: uint64(bx.width())})
		return
	}

	ctx.findPath(bx.left, bx.top, s.start.x, s.start.y)
	ctx.emitStep(s)
	ctx.findPath(s.end.x, s.end.y, bx.right, bx.bottom)
}

// emitStep appends the single non-diagonal move the snake implies.
// A forward snake takes its step immediately after start; a backward
// snake takes it immediately before end, past the diagonal run it
// already walked. dx == dy means the frontiers crossed on a pure
// diagonal and there is nothing to emit.
func (ctx *diffContext) emitStep(s snake) {
	dx := s.end.x - s.start.x
	dy := s.end.y - s.start.y

	switch {
	case dy > dx: // vertical step: one byte of B inserted
		p := s.start
		if !s.forward {
			p = point{x: s.end.x, y: s.end.y - 1}
		}
		ctx.ops = append(ctx.ops, Op{Kind: OpInsert, Pos: uint64(p.x), Payload: []byte{ctx.b[p.y]}})
	case dx > dy: // horizontal step: one byte of A deleted
		p := s.start
		if !s.forward {
			p = point{x: s.end.x - 1, y: s.end.y}
		}
		ctx.ops = append(ctx.ops, Op{Kind: OpDelete, Pos: uint64(p.x), Len: 1})
	}
}
