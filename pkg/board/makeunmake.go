package board

// Make applies mv to the position in place and returns the piece that was
// captured (Empty if none), following a fixed step order so that Unmake
// can invert it precisely.
func (p *Position) Make(mv Move) Piece {
	from, to := mv.From(), mv.To()
	mover := p.squares[from]
	captured := Empty
	if mv.IsCapture() {
		captured = p.squares[to]
	}

	// 1. Evaluation accumulators.
	sign := pieceSign(mover)
	mMg, mEg := PST(mover, from)
	p.mgPST -= sign * mMg
	p.egPST -= sign * mEg
	if captured != Empty {
		cSign := pieceSign(captured)
		cMg, cEg := PST(captured, to)
		p.mgPST -= cSign * cMg
		p.egPST -= cSign * cEg
		p.material -= cSign * MaterialValue(captured.Kind())
	}
	tMg, tEg := PST(mover, to)
	p.mgPST += sign * tMg
	p.egPST += sign * tEg

	// 2-4. Array, piece bit sets, side bit sets.
	p.remove(from, mover)
	if captured != Empty {
		p.remove(to, captured)
	}
	p.place(to, mover)

	// 5. Zobrist hash.
	p.hash ^= Zobrist.PieceKey(mover, from)
	p.hash ^= Zobrist.PieceKey(mover, to)
	if captured != Empty {
		p.hash ^= Zobrist.PieceKey(captured, to)
	}

	// 6. Side to move.
	p.turn = p.turn.Opponent()
	p.hash ^= Zobrist.SideKey()

	// 7. History.
	p.ply++
	p.history[p.ply] = p.hash

	return captured
}

// Unmake inverts the effect of Make(mv), given the piece it returned as
// captured. Afterward every field of p is bit-identical to its state
// immediately before the paired Make call.
func (p *Position) Unmake(mv Move, captured Piece) {
	from, to := mv.From(), mv.To()
	mover := p.squares[to]

	// 7. History.
	p.ply--

	// 6. Side to move.
	p.hash ^= Zobrist.SideKey()
	p.turn = p.turn.Opponent()

	// 5. Zobrist hash.
	if captured != Empty {
		p.hash ^= Zobrist.PieceKey(captured, to)
	}
	p.hash ^= Zobrist.PieceKey(mover, to)
	p.hash ^= Zobrist.PieceKey(mover, from)

	// 2-4. Array, piece bit sets, side bit sets.
	p.remove(to, mover)
	if captured != Empty {
		p.place(to, captured)
	}
	p.place(from, mover)

	// 1. Evaluation accumulators.
	sign := pieceSign(mover)
	tMg, tEg := PST(mover, to)
	p.mgPST -= sign * tMg
	p.egPST -= sign * tEg
	if captured != Empty {
		cSign := pieceSign(captured)
		cMg, cEg := PST(captured, to)
		p.mgPST += cSign * cMg
		p.egPST += cSign * cEg
		p.material += cSign * MaterialValue(captured.Kind())
	}
	mMg, mEg := PST(mover, from)
	p.mgPST += sign * mMg
	p.egPST += sign * mEg
}

// MakeNull performs the "no-op" null move used by null-move pruning: it
// only flips the side to move and pushes history, leaving the board
// otherwise untouched.
func (p *Position) MakeNull() {
	p.turn = p.turn.Opponent()
	p.hash ^= Zobrist.SideKey()
	p.ply++
	p.history[p.ply] = p.hash
}

// UnmakeNull inverts MakeNull.
func (p *Position) UnmakeNull() {
	p.ply--
	p.hash ^= Zobrist.SideKey()
	p.turn = p.turn.Opponent()
}
