// internal/puzzle/score.go
//
// Score bookkeeping for one game: running score, persisted best, and
// cleared-line counter. The best score is written through to the injected
// store the moment the running score exceeds it, not at game end.

package puzzle

// BestStore bridges the best score to persisted storage. Implementations are
// best-effort: they log their own failures and never block gameplay.
type BestStore interface {
	ReadBest() int
	WriteBest(n int)
}

// nopBest is the default store when none is injected.
type nopBest struct{}

func (nopBest) ReadBest() int { return 0 }
func (nopBest) WriteBest(int) {}

type scoreKeeper struct {
	score int
	best  int
	lines int
	store BestStore
}

// newScoreKeeper starts a fresh score with the best read from the store.
func newScoreKeeper(store BestStore) *scoreKeeper {
	return &scoreKeeper{best: store.ReadBest(), store: store}
}

// add increases the score and persists a new best immediately if exceeded.
func (k *scoreKeeper) add(n int) {
	k.score += n
	if k.score > k.best {
		k.best = k.score
		k.store.WriteBest(k.best)
	}
}

func (k *scoreKeeper) addLines(n int) { k.lines += n }
