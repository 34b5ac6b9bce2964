package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"dungeoncrawl/internal/config"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed    int64          `json:"seed"`
	Builder string         `json:"builder"`
	Depth   int            `json:"depth_reached"`
	Turns   int            `json:"turns"`
	Kills   map[string]int `json:"kills"` // name → kill count
	EndedAt time.Time      `json:"ended_at"`
}

func newRunLog(cfg config.Config) RunLog {
	return RunLog{
		Seed:    cfg.Seed,
		Builder: cfg.Dungeon.Builder,
		Depth:   1,
		Kills:   make(map[string]int),
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create run log dir")
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "open run log")
	}
	defer f.Close()

	if log.EndedAt.IsZero() {
		log.EndedAt = time.Now().UTC()
	}
	data, err := json.Marshal(log)
	if err != nil {
		return errors.Wrap(err, "encode run log")
	}
	_, err = f.Write(append(data, '\n'))
	return errors.Wrap(err, "write run log")
}

// runLogDir returns the directory where run logs are stored.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/dungeoncrawl,
// defaulting to ~/.local/share/dungeoncrawl.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "locate home directory")
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeoncrawl"), nil
}
