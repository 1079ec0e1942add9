package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/milk9111/vectorbuild/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $VECTOR_CONFIG)")
	scene := flag.String("scene", "", "scene file to compile")
	out := flag.String("out", "", "output directory for level_xml/ and the packed level")
	mode := flag.String("mode", "", "packaging mode: xml, zlib or dz")
	gameDir := flag.String("game-dir", "", "Vector install directory to copy level_xml.dz into")
	watchScene := flag.Bool("watch", false, "rebuild whenever the scene file changes")
	correct := flag.Bool("correct-factor", true, "scale backdrop positions by their parallax factor")
	flag.Parse()

	flags := config.Flags{
		Scene:     *scene,
		OutputDir: *out,
		Mode:      *mode,
		GameDir:   *gameDir,
		Watch:     *watchScene,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "correct-factor" {
			flags.CorrectFactor = correct
		}
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Resolve(flags); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := build(ctx, cfg); err != nil {
		log.Printf("build failed: %v", err)
		if !cfg.Watch {
			stop()
			os.Exit(1)
		}
	}
	if !cfg.Watch {
		return
	}
	if err := watch(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
