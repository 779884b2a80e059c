package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/horalog/internal/config"
	"github.com/f3rmion/horalog/internal/mjai"
	"github.com/f3rmion/horalog/internal/replay"
	"github.com/f3rmion/horalog/internal/sampler"
)

// collectPaths expands directories into the log files beneath them.
func collectPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("opening log: %w", err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && mjai.IsLogName(d.Name()) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", arg, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no logs found under %s", arg)
		}
		slices.Sort(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

// extractAll replays every path into one extractor.
func extractAll(logger *log.Logger, args []string) (*replay.Extractor, error) {
	paths, err := collectPaths(args)
	if err != nil {
		return nil, err
	}

	x := replay.NewExtractor(logger)
	for _, p := range paths {
		if err := x.ExtractFile(p); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// drawValid samples the whole population, then drops degenerate records.
func drawValid(cfg config.Config, population []replay.Sample) []replay.Sample {
	drawn := sampler.Draw(sampler.NewRand(cfg.Seed), population, cfg.Samples)
	return replay.Valid(drawn)
}
