package packaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

var ErrNoArtifact = errors.New("packaging: artifact not found")

// ScriptPackager writes the level into <ScriptDir>/level_xml/ and runs the
// dzip compile script there. The script is expected to leave level_xml.dz
// next to itself.
type ScriptPackager struct {
	opts Options
}

func (p *ScriptPackager) Package(ctx context.Context, a Artifact) (Result, error) {
	res := Result{BuildID: uuid.New(), Mode: ModeDZ}
	dir := p.opts.ScriptDir
	script := filepath.Join(dir, p.opts.Script)
	if _, err := os.Stat(script); err != nil {
		return res, fmt.Errorf("packaging: script %s: %w", script, err)
	}

	levelPath, _, err := writeLevel(dir, a)
	if err != nil {
		return res, err
	}
	res.LevelPath = levelPath

	archive := filepath.Join(dir, ArtifactName)
	if err := os.Remove(archive); err != nil && !os.IsNotExist(err) {
		return res, fmt.Errorf("packaging: remove stale %s: %w", archive, err)
	}

	if err := runScript(ctx, dir, script); err != nil {
		return res, err
	}

	info, err := os.Stat(archive)
	if err != nil {
		return res, fmt.Errorf("%w: %s", ErrNoArtifact, archive)
	}
	res.ArchivePath, res.Size = archive, info.Size()
	log.Printf("packaging: build %s compiled %s (%s)", res.BuildID, archive, humanize.Bytes(uint64(res.Size)))

	installed, err := install(ctx, p.opts, archive)
	if err != nil {
		return res, err
	}
	res.InstalledPath = installed
	return res, nil
}

func runScript(ctx context.Context, dir, script string) error {
	abs, err := filepath.Abs(script)
	if err != nil {
		return fmt.Errorf("packaging: resolve %s: %w", script, err)
	}
	cmd := exec.CommandContext(ctx, abs)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		return fmt.Errorf("packaging: %s failed: %w: %s", filepath.Base(script), err, msg)
	}
	if out := strings.TrimSpace(stdout.String()); out != "" {
		log.Printf("packaging: %s: %s", filepath.Base(script), out)
	}
	return nil
}
