package mydiff

// Middle-snake search from Myers 1986, "An O(ND) Difference Algorithm
// and Its Variations", Section 4b (linear-space refinement):
// http://www.xmailserver.org/diff2.pdf
//
// A forward frontier rooted at the box's top-left corner and a backward
// frontier rooted at its bottom-right corner each advance one edit step
// per budget d, greedily following free diagonal runs. The parity of
// delta (width-height) determines the only half-iteration on which the
// two frontiers can cross, so the crossing is detected exactly once.

// box is an axis-aligned window [left,right) x [top,bottom) over the
// two sequences: the still-unresolved region of the edit graph.
type box struct {
	left, top, right, bottom int
}

func (b box) width() int  { return b.right - b.left }
func (b box) height() int { return b.bottom - b.top }
func (b box) size() int   { return b.width() + b.height() }
func (b box) delta() int  { return b.width() - b.height() }

// point is a vertex in the edit graph; x indexes A, y indexes B.
type point struct {
	x, y int
}

// snake is a middle segment of a shortest path: the one non-diagonal
// step the crossing frontier took, plus the diagonal run it walked.
// For a forward snake the step is the first move after start; for a
// backward snake it is the last move before end. The emitter needs the
// direction to place the step at the correct endpoint.
type snake struct {
	start, end point
	forward    bool
}

// midpoint finds the middle snake of bx, or reports false for a
// zero-size box.
func (ctx *diffContext) midpoint(bx box) (snake, bool) {
	if bx.size() == 0 {
		return snake{}, false
	}

	maxD := (bx.size() + 1) / 2
	off := ctx.offset

	// Seed the frontiers so the d=0 iteration starts from the corners.
	ctx.vf[off+1] = bx.left
	ctx.vb[off+1] = bx.bottom

	for d := 0; d <= maxD; d++ {
		if s, ok := ctx.searchForward(bx, d); ok {
			return s, true
		}
		if s, ok := ctx.searchBackward(bx, d); ok {
			return s, true
		}
	}

	// Unreachable: the frontiers must cross within ceil(size/2) steps.
	return snake{}, false
}

// searchForward extends the forward frontier by one edit step on every
// reachable diagonal and reports a crossing with the backward frontier.
// Crossings are only checked when delta is odd.
func (ctx *diffContext) searchForward(bx box, d int) (snake, bool) {
	off := ctx.offset
	delta := bx.delta()

	for k := -d; k <= d; k += 2 {
		c := k - delta

		var x, px int
		if k == -d || (k != d && ctx.vf[off+k-1] < ctx.vf[off+k+1]) {
			x = ctx.vf[off+k+1] // vertical step: x unchanged
			px = x
		} else {
			px = ctx.vf[off+k-1]
			x = px + 1 // horizontal step
		}

		y := bx.top + (x - bx.left) - k
		py := y
		if d > 0 && x == px {
			py = y - 1
		}

		// Free diagonal run.
		for x < bx.right && y < bx.bottom && ctx.a[x] == ctx.b[y] {
			x++
			y++
		}

		ctx.vf[off+k] = x

		if delta%2 != 0 && c >= -(d-1) && c <= d-1 && y >= ctx.vb[off+c] {
			return snake{start: point{px, py}, end: point{x, y}, forward: true}, true
		}
	}

	return snake{}, false
}

// searchBackward is the mirror image of searchForward, rooted at the
// bottom-right corner. Crossings are only checked when delta is even.
func (ctx *diffContext) searchBackward(bx box, d int) (snake, bool) {
	off := ctx.offset
	delta := bx.delta()

	for c := -d; c <= d; c += 2 {
		k := c + delta

		var y, py int
		if c == -d || (c != d && ctx.vb[off+c-1] > ctx.vb[off+c+1]) {
			y = ctx.vb[off+c+1] // horizontal step: y unchanged
			py = y
		} else {
			py = ctx.vb[off+c-1]
			y = py - 1 // vertical step
		}

		x := bx.left + (y - bx.top) + k
		px := x
		if d > 0 && y == py {
			px = x + 1
		}

		// Free diagonal run, walked backward.
		for x > bx.left && y > bx.top && ctx.a[x-1] == ctx.b[y-1] {
			x--
			y--
		}

		ctx.vb[off+c] = y

		if delta%2 == 0 && k >= -d && k <= d && x <= ctx.vf[off+k] {
			return snake{start: point{x, y}, end: point{px, py}, forward: false}, true
		}
	}

	return snake{}, false
}
