package egtb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/joansalasoler/draughts/game"
	"github.com/joansalasoler/draughts/hash"
)

// Game is the rules capability the solver drives. Implementations
// enumerate legal moves, play and take back moves, and report the
// exact outcome of finished games from the mover's perspective.
type Game interface {
	SetPosition(pos game.Position, turn int)
	LegalMoves() []game.Move
	Make(m game.Move)
	Unmake()
	HasEnded() bool
	Outcome() int
	Position() game.Position
}

// Solver computes exact scores for every position of up to maxPieces
// pieces by retrograde analysis, one piece-count tier at a time. Lower
// tiers are always fully solved before a higher tier starts, so every
// capture leads into finished territory.
type Solver struct {
	hasher  *hash.Perfect
	store   Store
	game    Game
	visited atomic.Uint64
}

// NewSolver returns a solver that records nodes into store.
func NewSolver(hasher *hash.Perfect, store Store, g Game) *Solver {
	return &Solver{hasher: hasher, store: store, game: g}
}

// Solve builds all tiers from one piece up to maxPieces. Cancelling the
// context stops the build between positions; finished tiers remain
// valid in the store, the tier in flight does not.
func (s *Solver) Solve(ctx context.Context, maxPieces int) error {
	if maxPieces < 1 || maxPieces > hash.MaxPieces {
		return fmt.Errorf("egtb: cannot solve %d piece endings", maxPieces)
	}

	g := &errgroup.Group{}
	done := make(chan bool)

	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		var lastVisited uint64
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				visited := s.visited.Load()
				log.Debug().Uint64("pps", visited-lastVisited).Msg("positions-per-second")
				lastVisited = visited
			}
		}
	})

	g.Go(func() error {
		err := s.solveTiers(ctx, maxPieces)
		done <- true
		return err
	})

	return g.Wait()
}

func (s *Solver) solveTiers(ctx context.Context, maxPieces int) error {
	for pieces := 1; pieces <= maxPieces; pieces++ {
		tstart := time.Now()
		log.Info().Int("pieces", pieces).
			Uint64("positions", s.hasher.Offset(pieces)-s.hasher.Offset(pieces-1)).
			Msg("solving-tier")

		if err := s.create(ctx, pieces); err != nil {
			return err
		}
		if err := s.propagate(ctx, pieces); err != nil {
			return err
		}
		if err := s.resolve(ctx, pieces); err != nil {
			return err
		}

		log.Info().Int("pieces", pieces).
			Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
			Msg("tier-solved")
	}

	return nil
}

// create scores the immediately decided positions of a tier: those
// where the player to move has no legal moves and loses.
func (s *Solver) create(ctx context.Context, pieces int) error {
	from, to := s.hasher.Offset(pieces-1), s.hasher.Offset(pieces)

	for h := from; h < to; h++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.visited.Add(1)
		s.game.SetPosition(s.hasher.Unhash(h), game.South)

		if !s.game.HasEnded() {
			continue
		}

		err := s.store.Write(&Node{
			Hash:   h,
			Pieces: pieces,
			Score:  s.game.Outcome(),
			Flag:   FlagExact,
			Known:  true,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// propagate sweeps the tier until a fixed point, scoring every node
// whose value follows from already solved successors.
func (s *Solver) propagate(ctx context.Context, pieces int) error {
	from, to := s.hasher.Offset(pieces-1), s.hasher.Offset(pieces)

	for changed := true; changed; {
		changed = false

		for h := from; h < to; h++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			node, err := s.store.Read(h)
			if err != nil {
				return err
			}
			if node.Known {
				continue
			}

			s.visited.Add(1)
			score, proven, err := s.expand(h)
			if err != nil {
				return err
			}
			if !proven {
				continue
			}

			err = s.store.Write(&Node{
				Hash:   h,
				Pieces: pieces,
				Score:  score,
				Flag:   FlagExact,
				Known:  true,
			})
			if err != nil {
				return err
			}
			changed = true
		}
	}

	return nil
}

// expand scores the position at hash h from its successors. The score
// is proven when every reply is solved, or early when any reply is a
// proven loss for the opponent.
func (s *Solver) expand(h uint64) (int, bool, error) {
	s.game.SetPosition(s.hasher.Unhash(h), game.South)

	best := -game.MaxScore
	proven := true

	for _, m := range s.game.LegalMoves() {
		s.game.Make(m)
		childHash := s.hasher.Hash(s.game.Position().Rotate())
		s.game.Unmake()

		child, err := s.store.Read(childHash)
		if err != nil {
			return 0, false, err
		}
		if !child.Known {
			proven = false
			continue
		}

		if -child.Score >= game.MaxScore {
			return game.MaxScore, true, nil
		}
		if -child.Score > best {
			best = -child.Score
		}
	}

	return best, proven, nil
}

// resolve closes a tier: any position still unknown after propagation
// cannot be forced to a decisive result by either player and is an
// exact draw.
func (s *Solver) resolve(ctx context.Context, pieces int) error {
	from, to := s.hasher.Offset(pieces-1), s.hasher.Offset(pieces)

	for h := from; h < to; h++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		node, err := s.store.Read(h)
		if err != nil {
			return err
		}
		if node.Known {
			continue
		}

		err = s.store.Write(&Node{
			Hash:   h,
			Pieces: pieces,
			Score:  game.DrawScore,
			Flag:   FlagExact,
			Known:  true,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
