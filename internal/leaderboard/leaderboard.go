// Package leaderboard keeps the capped, ascending list of best round times.
//
// The whole list is persisted as one JSON array under a single key of a
// storage.KV. Storage problems never surface to the player: unreadable data
// loads as an empty board and failed writes are logged.
package leaderboard

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numrush/internal/storage"
)

// Key is the storage key holding the serialized board.
const Key = "numrush_leaderboard"

// DefaultCap is the number of records kept.
const DefaultCap = 20

// Record is one finished round.
type Record struct {
	Ms   int64     `json:"ms"`
	Date time.Time `json:"date"`
}

// Board is the leaderboard bound to a store.
type Board struct {
	kv     storage.KV
	cap    int
	logger *log.Logger
	now    func() time.Time
}

// New creates a board over kv keeping at most limit records.
// A non-positive limit means DefaultCap; a nil logger discards output.
func New(kv storage.KV, limit int, logger *log.Logger) *Board {
	if limit <= 0 {
		limit = DefaultCap
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		kv:     kv,
		cap:    limit,
		logger: logger.WithPrefix("leaderboard"),
		now:    time.Now,
	}
}

// Cap returns the maximum number of records kept.
func (b *Board) Cap() int {
	return b.cap
}

// Load returns the stored records sorted ascending by time.
// Missing or corrupt data yields an empty list.
func (b *Board) Load() []Record {
	records, _ := b.load()
	return records
}

// load is Load that also reports whether the stored value could be read.
// Corrupt data counts as read: it is replaced on the next save.
func (b *Board) load() ([]Record, bool) {
	raw, ok, err := b.kv.Get(Key)
	if err != nil {
		b.logger.Warn("load failed", "err", err)
		return []Record{}, false
	}
	if !ok || raw == "" {
		return []Record{}, true
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		b.logger.Warn("discarding corrupt leaderboard", "err", err)
		return []Record{}, true
	}
	if records == nil {
		return []Record{}, true
	}

	sortRecords(records)
	return records, true
}

// Save adds a record for ms taken now, keeps the fastest Cap records and
// persists them. It returns the resulting list even if the write failed.
// When the stored list cannot be read the store is left untouched, so a
// transient read error never replaces the saved board.
func (b *Board) Save(ms int64) []Record {
	if ms < 0 {
		ms = 0
	}

	stored, readable := b.load()
	records := append(stored, Record{Ms: ms, Date: b.now()})
	sortRecords(records)
	if len(records) > b.cap {
		records = records[:b.cap]
	}

	if !readable {
		b.logger.Error("not saving over unreadable leaderboard", "ms", ms)
		return records
	}

	data, err := json.Marshal(records)
	if err != nil {
		b.logger.Error("encode failed", "err", err)
		return records
	}
	if err := b.kv.Put(Key, string(data)); err != nil {
		b.logger.Error("save failed", "ms", ms, "err", err)
		return records
	}

	b.logger.Debug("record saved", "ms", ms, "entries", len(records))
	return records
}

// Clear removes every record.
func (b *Board) Clear() error {
	if err := b.kv.Delete(Key); err != nil {
		b.logger.Error("clear failed", "err", err)
		return err
	}
	return nil
}

// Rank returns the 1-based position ms takes in records, which must be
// sorted ascending. Equal times rank at the first of them; a time slower
// than every record ranks len(records)+1.
func Rank(ms int64, records []Record) int {
	for i, r := range records {
		if r.Ms >= ms {
			return i + 1
		}
	}
	return len(records) + 1
}

// Best returns the fastest record and false if there are none.
func Best(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	return records[0], true
}

// IsNewBest reports whether ms is the best time in records.
func IsNewBest(ms int64, records []Record) bool {
	best, ok := Best(records)
	return ok && best.Ms == ms
}

// sortRecords orders by time; equal times keep their earlier position, so an
// older record stays ahead of a new one with the same time.
func sortRecords(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(a.Ms, b.Ms)
	})
}
