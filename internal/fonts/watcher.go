package fonts

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch reloads the source whenever its backing file changes, until
// ctx is done. The containing directory is watched rather than the
// file itself because most editors replace files via rename. Returns
// immediately for the embedded default.
func (s *Source) Watch(ctx context.Context, log zerolog.Logger) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return err
	}

	base := filepath.Base(s.path)
	log.Info().Str("font", s.path).Msg("watching font file for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Warn().Err(err).Msg("font reload failed, keeping previous font")
				continue
			}
			log.Info().Str("font", s.path).Msg("font reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("font watcher error")
		}
	}
}
