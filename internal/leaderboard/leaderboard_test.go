package leaderboard

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/numrush/internal/storage"
)

// failingKV reads normally but refuses every write.
type failingKV struct {
	*storage.Memory
}

var errWrite = errors.New("disk full")

func (failingKV) Put(string, string) error { return errWrite }
func (failingKV) Delete(string) error      { return errWrite }

// flakyKV fails reads while down is set and records every write.
type flakyKV struct {
	*storage.Memory
	down   bool
	writes int
}

var errRead = errors.New("database is locked")

func (f *flakyKV) Get(key string) (string, bool, error) {
	if f.down {
		return "", false, errRead
	}
	return f.Memory.Get(key)
}

func (f *flakyKV) Put(key, value string) error {
	f.writes++
	return f.Memory.Put(key, value)
}

func newTestBoard(t *testing.T) (*Board, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	b := New(kv, DefaultCap, nil)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	b.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	return b, kv
}

func msOf(records []Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.Ms
	}
	return out
}

func TestLoadEmpty(t *testing.T) {
	b, _ := newTestBoard(t)
	got := b.Load()
	if got == nil || len(got) != 0 {
		t.Errorf("Load() = %v, expected empty non-nil list", got)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not json"},
		{"object", `{"ms": 5}`},
		{"truncated", `[{"ms": 5, "date": "2025-`},
		{"null", "null"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, kv := newTestBoard(t)
			if err := kv.Put(Key, tt.raw); err != nil {
				t.Fatal(err)
			}
			if got := b.Load(); len(got) != 0 {
				t.Errorf("Load() = %v, expected empty", got)
			}
		})
	}
}

func TestLoadSortsStoredRecords(t *testing.T) {
	b, kv := newTestBoard(t)
	kv.Put(Key, `[{"ms":900,"date":"2025-01-01T00:00:00Z"},{"ms":300,"date":"2025-01-02T00:00:00Z"}]`)

	got := msOf(b.Load())
	if len(got) != 2 || got[0] != 300 || got[1] != 900 {
		t.Errorf("Load() = %v, expected [300 900]", got)
	}
}

func TestSaveSortsAndPersists(t *testing.T) {
	b, kv := newTestBoard(t)

	for _, ms := range []int64{5000, 3000, 4000} {
		b.Save(ms)
	}

	got := msOf(b.Load())
	want := []int64{3000, 4000, 5000}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Load() = %v, expected %v", got, want)
		}
	}

	raw, ok, _ := kv.Get(Key)
	if !ok {
		t.Fatal("nothing persisted")
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("stored value is not a JSON array: %v", err)
	}
	if _, ok := decoded[0]["ms"]; !ok {
		t.Errorf("stored record missing ms field: %v", decoded[0])
	}
	if _, ok := decoded[0]["date"]; !ok {
		t.Errorf("stored record missing date field: %v", decoded[0])
	}
}

func TestSaveCapsAtTwenty(t *testing.T) {
	b, _ := newTestBoard(t)

	var last []Record
	for i := 1; i <= 21; i++ {
		last = b.Save(int64(i * 100))
	}

	if len(last) != 20 {
		t.Fatalf("Save() returned %d records, expected 20", len(last))
	}
	loaded := b.Load()
	if len(loaded) != 20 {
		t.Fatalf("Load() returned %d records, expected 20", len(loaded))
	}
	for i, r := range loaded {
		if want := int64((i + 1) * 100); r.Ms != want {
			t.Errorf("record %d = %d, expected %d", i, r.Ms, want)
		}
	}
}

func TestSaveFastTimeEvictsSlowest(t *testing.T) {
	b, _ := newTestBoard(t)
	for i := 1; i <= 20; i++ {
		b.Save(int64(1000 + i))
	}

	got := b.Save(1)
	if len(got) != 20 || got[0].Ms != 1 || got[19].Ms != 1019 {
		t.Errorf("Save(1) = %v", msOf(got))
	}
}

func TestSaveTieKeepsOlderFirst(t *testing.T) {
	b, _ := newTestBoard(t)
	first := b.Save(700)
	second := b.Save(700)

	if len(second) != 2 {
		t.Fatalf("len = %d, expected 2", len(second))
	}
	if !second[0].Date.Equal(first[0].Date) {
		t.Errorf("older record not first: %v", second)
	}
}

func TestSaveClampsNegative(t *testing.T) {
	b, _ := newTestBoard(t)
	if got := b.Save(-5); got[0].Ms != 0 {
		t.Errorf("Save(-5) stored %d, expected 0", got[0].Ms)
	}
}

func TestSaveWriteFailure(t *testing.T) {
	b := New(failingKV{storage.NewMemory()}, DefaultCap, nil)

	got := b.Save(1234)
	if len(got) != 1 || got[0].Ms != 1234 {
		t.Errorf("Save() = %v, expected the in-memory result", msOf(got))
	}
	if loaded := b.Load(); len(loaded) != 0 {
		t.Errorf("Load() after failed write = %v, expected empty", msOf(loaded))
	}
}

func TestSaveKeepsStoredBoardOnReadError(t *testing.T) {
	kv := &flakyKV{Memory: storage.NewMemory()}
	b := New(kv, DefaultCap, nil)
	b.Save(300)
	b.Save(700)
	writes := kv.writes

	kv.down = true
	got := b.Save(500)
	if len(got) != 1 || got[0].Ms != 500 {
		t.Errorf("Save() = %v, expected [500] in memory", msOf(got))
	}
	if kv.writes != writes {
		t.Errorf("Save() wrote %d times after a read error, expected 0", kv.writes-writes)
	}

	kv.down = false
	if loaded := msOf(b.Load()); len(loaded) != 2 || loaded[0] != 300 || loaded[1] != 700 {
		t.Errorf("Load() = %v, expected [300 700] untouched", loaded)
	}
}

func TestSaveReplacesCorruptBoard(t *testing.T) {
	b, kv := newTestBoard(t)
	kv.Put(Key, "not json")

	b.Save(900)
	if loaded := msOf(b.Load()); len(loaded) != 1 || loaded[0] != 900 {
		t.Errorf("Load() = %v, expected [900]", loaded)
	}
}

func TestClear(t *testing.T) {
	b, _ := newTestBoard(t)
	b.Save(100)
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := b.Load(); len(got) != 0 {
		t.Errorf("Load() after Clear = %v", got)
	}

	fb := New(failingKV{storage.NewMemory()}, DefaultCap, nil)
	if err := fb.Clear(); !errors.Is(err, errWrite) {
		t.Errorf("Clear() error = %v, expected %v", err, errWrite)
	}
}

func TestCustomCap(t *testing.T) {
	b := New(storage.NewMemory(), 3, nil)
	for _, ms := range []int64{40, 10, 30, 20} {
		b.Save(ms)
	}
	got := msOf(b.Load())
	if len(got) != 3 || got[0] != 10 || got[2] != 30 {
		t.Errorf("Load() = %v, expected [10 20 30]", got)
	}
	if New(storage.NewMemory(), 0, nil).Cap() != DefaultCap {
		t.Error("zero cap did not fall back to DefaultCap")
	}
}

func TestRank(t *testing.T) {
	recs := func(ms ...int64) []Record {
		out := make([]Record, len(ms))
		for i, m := range ms {
			out[i] = Record{Ms: m}
		}
		return out
	}

	tests := []struct {
		name    string
		ms      int64
		records []Record
		want    int
	}{
		{"empty", 500, nil, 1},
		{"between", 500, recs(300, 700), 2},
		{"fastest", 100, recs(300, 700), 1},
		{"slowest", 900, recs(300, 700), 3},
		{"exact match", 700, recs(300, 700), 2},
		{"tie resolves to first", 500, recs(300, 500, 500, 800), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rank(tt.ms, tt.records); got != tt.want {
				t.Errorf("Rank(%d) = %d, expected %d", tt.ms, got, tt.want)
			}
		})
	}
}

func TestRankAfterSave(t *testing.T) {
	b, _ := newTestBoard(t)
	b.Save(300)
	b.Save(700)
	records := b.Save(500)

	if got := Rank(500, records); got != 2 {
		t.Errorf("Rank(500) = %d, expected 2", got)
	}
	if !IsNewBest(300, records) || IsNewBest(500, records) {
		t.Error("IsNewBest() wrong for saved records")
	}
	if best, ok := Best(records); !ok || best.Ms != 300 {
		t.Errorf("Best() = %v, %v", best, ok)
	}
	if _, ok := Best(nil); ok {
		t.Error("Best(nil) reported a record")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "numrush.db")

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	New(store, DefaultCap, nil).Save(4321)
	store.Close()

	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got := New(store, DefaultCap, nil).Load()
	if len(got) != 1 || got[0].Ms != 4321 {
		t.Errorf("Load() after reopen = %v", msOf(got))
	}
	if got[0].Date.IsZero() {
		t.Error("date not persisted")
	}
}
