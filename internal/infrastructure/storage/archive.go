package storage

import (
	"context"
	"os"
	"path/filepath"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
	"github.com/riskibarqy/club-tracker/internal/domain/news"
	"github.com/riskibarqy/club-tracker/internal/domain/player"
)

const snapshotVersion = 1

// Snapshot is the full club state written back after every mutation.
type Snapshot struct {
	Players []player.Player
	News    []news.Item
	Matches []match.Match
}

// Archive persists the club state as a single JSON file. Writes go through a
// temp file and rename so a crash mid-write never truncates the snapshot.
type Archive struct {
	path string
	now  func() time.Time
}

func NewArchive(path string) *Archive {
	return &Archive{
		path: path,
		now:  time.Now,
	}
}

// Load reads the snapshot from disk. The second return is false when no
// snapshot exists yet, which callers treat as "seed the defaults".
func (a *Archive) Load(_ context.Context) (Snapshot, bool, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, crerr.Wrapf(err, "read snapshot %s", a.path)
	}
	if len(data) == 0 {
		return Snapshot{}, false, nil
	}

	var file snapshotFileModel
	if err := sonic.Unmarshal(data, &file); err != nil {
		return Snapshot{}, false, crerr.Wrapf(err, "decode snapshot %s", a.path)
	}

	snap := Snapshot{
		Players: make([]player.Player, 0, len(file.Players)),
		News:    make([]news.Item, 0, len(file.News)),
		Matches: make([]match.Match, 0, len(file.Matches)),
	}
	for _, p := range file.Players {
		snap.Players = append(snap.Players, playerFromFile(p))
	}
	for _, n := range file.News {
		snap.News = append(snap.News, newsFromFile(n))
	}
	for _, m := range file.Matches {
		snap.Matches = append(snap.Matches, matchFromFile(m))
	}

	return snap, true, nil
}

// Save atomically replaces the snapshot file with the given state.
func (a *Archive) Save(_ context.Context, snap Snapshot) error {
	file := snapshotFileModel{
		Version: snapshotVersion,
		SavedAt: a.now().UTC(),
		Players: make([]playerFileModel, 0, len(snap.Players)),
		News:    make([]newsFileModel, 0, len(snap.News)),
		Matches: make([]matchFileModel, 0, len(snap.Matches)),
	}
	for _, p := range snap.Players {
		file.Players = append(file.Players, playerToFile(p))
	}
	for _, n := range snap.News {
		file.News = append(file.News, newsToFile(n))
	}
	for _, m := range snap.Matches {
		file.Matches = append(file.Matches, matchToFile(m))
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(file); err != nil {
		return crerr.Wrap(err, "encode snapshot")
	}

	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return crerr.Wrapf(err, "create snapshot dir %s", dir)
		}
	}

	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return crerr.Wrapf(err, "write snapshot temp %s", tmp)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		return crerr.Wrapf(err, "replace snapshot %s", a.path)
	}

	return nil
}
