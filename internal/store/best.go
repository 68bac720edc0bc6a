// internal/store/best.go
//
// BestStore backends. The engine treats the best score as an injected
// capability (puzzle.BestStore); these implementations bridge it to memory,
// SQLite, or Redis. All of them are best-effort: storage failures are logged
// and gameplay continues with what the engine already knows.

package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MemoryBest is an in-process BestStore for guests without durable storage
// and for tests.
type MemoryBest struct {
	mu   sync.Mutex
	best int
}

// NewMemoryBest constructs a MemoryBest seeded with an initial best.
func NewMemoryBest(initial int) *MemoryBest {
	return &MemoryBest{best: initial}
}

func (b *MemoryBest) ReadBest() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best
}

func (b *MemoryBest) WriteBest(n int) {
	b.mu.Lock()
	if n > b.best {
		b.best = n
	}
	b.mu.Unlock()
}

// SQLiteBest persists one owner's best score in the best_scores table.
type SQLiteBest struct {
	db    *sql.DB
	owner string
}

// NewSQLiteBest constructs a SQLiteBest for the given owner ID.
func NewSQLiteBest(db *sql.DB, owner string) *SQLiteBest {
	return &SQLiteBest{db: db, owner: owner}
}

func (b *SQLiteBest) ReadBest() int {
	var n int
	err := b.db.QueryRow(`SELECT best FROM best_scores WHERE owner_id=?`, b.owner).Scan(&n)
	if err == sql.ErrNoRows {
		return 0
	}
	if err != nil {
		log.Warn().Err(err).Str("owner", b.owner).Msg("read best score")
		return 0
	}
	return n
}

// WriteBest upserts the owner's best. The WHERE clause keeps it monotone
// even if a stale session writes late.
func (b *SQLiteBest) WriteBest(n int) {
	_, err := b.db.Exec(`
		INSERT INTO best_scores (owner_id, best) VALUES (?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET best=excluded.best
		WHERE excluded.best > best_scores.best`, b.owner, n)
	if err != nil {
		log.Warn().Err(err).Str("owner", b.owner).Msg("write best score")
	}
}

// RedisBest keeps one owner's best score under a single Redis key.
// Alternative to SQLiteBest for deployments that already run Redis;
// selected with BEST_STORE=redis.
type RedisBest struct {
	rdb *redis.Client
	key string
}

// NewRedisBest constructs a RedisBest for the given owner ID.
func NewRedisBest(rdb *redis.Client, owner string) *RedisBest {
	return &RedisBest{rdb: rdb, key: "blockpuzzle:best:" + owner}
}

func (b *RedisBest) ReadBest() int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := b.rdb.Get(ctx, b.key).Int()
	if err == redis.Nil {
		return 0
	}
	if err != nil {
		log.Warn().Err(err).Str("key", b.key).Msg("read best score")
		return 0
	}
	return n
}

func (b *RedisBest) WriteBest(n int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cur, err := b.rdb.Get(ctx, b.key).Int()
	if err != nil && err != redis.Nil {
		log.Warn().Err(err).Str("key", b.key).Msg("read best before write")
	}
	if n <= cur {
		return
	}
	if err := b.rdb.Set(ctx, b.key, n, 0).Err(); err != nil {
		log.Warn().Err(err).Str("key", b.key).Msg("write best score")
	}
}
