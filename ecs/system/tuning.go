package system

import (
	"log"
	"path/filepath"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/motion"
	"github.com/milk9111/topdown/prefabs"
)

// TuningSystem hot-reloads the motion config when prefabs/player.yaml
// changes on disk. Every controlled body shares the config pointer, so
// a reload takes effect on the next tick without touching controller
// state.
type TuningSystem struct {
	watcher *prefabs.Watcher
	cfg     *motion.Config
}

func NewTuningSystem(cfg *motion.Config) *TuningSystem {
	watcher, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		log.Printf("tuning: live reload disabled: %v", err)
		watcher = nil
	}
	return &TuningSystem{watcher: watcher, cfg: cfg}
}

func (s *TuningSystem) Update(w *ecs.World) {
	if s == nil || s.watcher == nil || s.cfg == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			if filepath.Base(path) != "player.yaml" {
				continue
			}
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				log.Printf("tuning: reload failed: %v", err)
				continue
			}
			*s.cfg = spec.Motion
			log.Printf("tuning: reloaded motion config from %s", path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			log.Printf("tuning: watcher error: %v", err)
		default:
			return
		}
	}
}

func (s *TuningSystem) Close() error {
	if s == nil || s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}
