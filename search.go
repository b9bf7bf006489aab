package zugzwang

// SearchResult is the outcome of an AlphaBeta call: the score from White's
// perspective and the principal variation that achieves it.
type SearchResult struct {
	Score int32
	PV    []Move
}

// AlphaBeta performs a fixed-depth minimax search with alpha-beta pruning.
// White maximizes, Black minimizes; a mate scores +MateScore or -MateScore,
// signed by the winning side, whatever the ply at which it occurs.
func AlphaBeta(pos *Position, depth int, alpha, beta int32) SearchResult {
	sink := NewVectorSink()
	inCheck := GenerateLegalMoves(pos, sink)
	moves := sink.List.Slice()

	if len(moves) == 0 {
		eval := pos.Evaluate(false, inCheck)
		return SearchResult{Score: mateOrDrawScore(eval)}
	}

	if eval := pos.Evaluate(true, inCheck); eval.Draw {
		return SearchResult{Score: 0}
	}

	if depth == 0 {
		return SearchResult{Score: pos.Evaluate(true, inCheck).Score}
	}

	white := pos.SideToMove == White
	var best SearchResult
	haveBest := false

	for _, m := range moves {
		undo := pos.Make(m)
		child := AlphaBeta(pos, depth-1, alpha, beta)
		pos.Unmake(undo)

		improves := !haveBest
		if haveBest {
			if white {
				improves = child.Score > best.Score
			} else {
				improves = child.Score < best.Score
			}
		}
		if improves {
			best = SearchResult{Score: child.Score, PV: appendMove(m, child.PV)}
			haveBest = true
		}

		if white {
			if best.Score > alpha {
				alpha = best.Score
			}
			if best.Score >= beta {
				break
			}
		} else {
			if best.Score < beta {
				beta = best.Score
			}
			if best.Score <= alpha {
				break
			}
		}
	}

	return best
}

func appendMove(m Move, rest []Move) []Move {
	pv := make([]Move, 0, len(rest)+1)
	pv = append(pv, m)
	pv = append(pv, rest...)
	return pv
}

// mateOrDrawScore scores a terminal no-legal-moves position: signed mate
// score for the side that just delivered checkmate, zero for stalemate.
func mateOrDrawScore(eval Evaluation) int32 {
	if !eval.Win {
		return 0
	}
	if eval.Side == White {
		return MateScore
	}
	return -MateScore
}
