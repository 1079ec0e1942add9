package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/milk9111/vectorbuild/buildmap"
	"github.com/milk9111/vectorbuild/config"
	"github.com/milk9111/vectorbuild/ecs/entity"
	"github.com/milk9111/vectorbuild/packaging"
	"github.com/milk9111/vectorbuild/scenes"
)

// build runs one load, compile and package cycle. Entity diagnostics are
// logged; the level is still packaged.
func build(ctx context.Context, cfg config.Config) (packaging.Result, error) {
	start := time.Now()
	log.Printf("building %s...", cfg.Scene)

	world, err := entity.LoadScene(cfg.Scene)
	if err != nil {
		return packaging.Result{}, err
	}

	doc, err := buildmap.Compile(buildmap.NewWorldScene(world), cfg.Level)
	var diags buildmap.Diagnostics
	switch {
	case errors.As(err, &diags):
		for _, d := range diags {
			log.Printf("%v", d)
		}
		if fatal := diags.Fatal(); len(fatal) > 0 {
			log.Printf("%d entities skipped", len(fatal))
		}
	case err != nil:
		return packaging.Result{}, err
	}

	p, err := packaging.New(cfg.Mode, cfg.PackagingOptions())
	if err != nil {
		return packaging.Result{}, err
	}
	res, err := p.Package(ctx, packaging.Artifact{
		FileName: cfg.Level.LevelFileName(),
		Level:    doc,
	})
	if err != nil {
		return res, err
	}

	log.Printf("build %s: %s level, %s", res.BuildID, res.Mode, humanize.Bytes(uint64(res.Size)))
	log.Printf("building done! (%.3f seconds)", time.Since(start).Seconds())
	return res, nil
}

func rebuildMessage(path string, lastBuild time.Time) string {
	return fmt.Sprintf("%s changed, rebuilding (last build %s)", filepath.Base(path), humanize.Time(lastBuild))
}

// watch rebuilds whenever the scene file changes, until ctx is done.
func watch(ctx context.Context, cfg config.Config) error {
	target, err := filepath.Abs(cfg.Scene)
	if err != nil {
		return err
	}
	w, err := scenes.NewWatcher(filepath.Dir(target))
	if err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	defer w.Close()
	log.Printf("watching %s", target)
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			log.Printf("watcher stopped")
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			if abs, err := filepath.Abs(path); err != nil || abs != target {
				continue
			}
			log.Print(rebuildMessage(path, last))
			if _, err := build(ctx, cfg); err != nil {
				log.Printf("build failed: %v", err)
				continue
			}
			last = time.Now()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}
