package engine

import (
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the current position once.
func (g *GameState) Perft(depth int) uint64 {
	return g.perft(depth, nil)
}

// PerftCached is Perft with subtree counts shared through cache. A nil cache
// disables caching.
func (g *GameState) PerftCached(depth int, cache *hashing.PerftCache) uint64 {
	return g.perft(depth, cache)
}

func (g *GameState) perft(depth int, cache *hashing.PerftCache) uint64 {
	if depth <= 0 {
		return 1
	}

	var key uint64
	if cache != nil && depth > 1 {
		key = g.Hash()
		if nodes, ok := cache.Get(key, depth); ok {
			return nodes
		}
	}

	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		g.Apply(m)
		nodes += g.perft(depth-1, cache)
		g.Undo()
	}

	if cache != nil {
		cache.Put(key, depth, nodes)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move in
// long algebraic form.
func (g *GameState) Divide(depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range g.LegalMoves() {
		g.Apply(m)
		counts[m.UCI()] = g.perft(depth-1, nil)
		g.Undo()
	}
	return counts
}

// ParallelDivide computes Divide with one work item per root move. Each worker
// rebuilds the position from g's FEN, so g itself is only read before the
// workers start. cache may be nil.
func ParallelDivide(g *GameState, depth, workers int, cache *hashing.PerftCache) (map[string]uint64, error) {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts, nil
	}

	fen := g.FEN()
	roots := g.LegalMoves()

	pool := worker.NewPoolWithOptions(
		subtreeCounter(fen, depth-1, cache),
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(roots)+1),
	)
	pool.Start()

	go func() {
		for i, m := range roots {
			pool.Submit(worker.WorkItem{Move: m, Index: i})
		}
		pool.Close()
	}()

	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
				pool.Stop()
			}
			continue
		}
		counts[result.Move.UCI()] = result.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return counts, nil
}

// subtreeCounter returns the worker function counting one root move's subtree
// on a private copy of the position.
func subtreeCounter(fen string, depth int, cache *hashing.PerftCache) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Move: item.Move, Index: item.Index}

		local, err := NewGameFromFEN(fen)
		if err != nil {
			result.Error = err
			return result
		}
		if err := local.MakeMove(item.Move); err != nil {
			result.Error = err
			return result
		}
		result.Nodes = local.perft(depth, cache)
		return result
	}
}
