package mydiff

// diffContext holds algorithm state during one comparison.
//
// vf and vb are the furthest-reached x (respectively y) per diagonal
// for the forward and backward frontiers. They are allocated once,
// shared by every recursive midpoint call, and re-seeded per call;
// reset additionally reuses them across streamed chunk pairs, growing
// only when a pair is larger than any seen before.
type diffContext struct {
	a, b   []byte
	vf, vb []int
	offset int // diagonal k is stored at index k+offset
	ops    []Op
}

// newDiffContext creates a context sized for comparing a and b.
func newDiffContext(a, b []byte) *diffContext {
	ctx := &diffContext{}
	ctx.reset(a, b)
	return ctx
}

// reset re-targets the context at a new sequence pair.
func (ctx *diffContext) reset(a, b []byte) {
	ctx.a, ctx.b = a, b

	// Diagonals range over [-maxD-1, maxD+1] where maxD bounds the
	// half-distance either frontier can travel.
	maxD := (len(a)+len(b)+1)/2 + 1
	if size := 2*maxD + 3; len(ctx.vf) < size {
		ctx.vf = make([]int, size)
		ctx.vb = make([]int, size)
	}
	ctx.offset = maxD + 1
	ctx.ops = ctx.ops[:0]
}
