package packaging

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessCloser stops every running process with the given name and reports
// how many it stopped.
type ProcessCloser interface {
	CloseProcesses(ctx context.Context, name string) (int, error)
}

// SystemProcesses closes processes found in the OS process table.
type SystemProcesses struct {
	// ExitTimeout bounds the wait for each killed process. Zero means 5s.
	ExitTimeout time.Duration
}

func (s SystemProcesses) CloseProcesses(ctx context.Context, name string) (int, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("packaging: list processes: %w", err)
	}
	closed := 0
	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil || !matchProcessName(pname, name) {
			continue
		}
		log.Printf("packaging: closing %s (pid %d)", pname, p.Pid)
		if err := p.KillWithContext(ctx); err != nil {
			return closed, fmt.Errorf("packaging: kill %s (pid %d): %w", pname, p.Pid, err)
		}
		s.waitExit(ctx, p)
		closed++
	}
	return closed, nil
}

func (s SystemProcesses) waitExit(ctx context.Context, p *process.Process) {
	timeout := s.ExitTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		running, err := p.IsRunningWithContext(ctx)
		if err != nil || !running {
			return
		}
		select {
		case <-ctx.Done():
			log.Printf("packaging: pid %d still running after %s", p.Pid, timeout)
			return
		case <-ticker.C:
		}
	}
}

func matchProcessName(got, want string) bool {
	got = strings.TrimSuffix(strings.ToLower(got), ".exe")
	return got == strings.ToLower(want)
}

// install closes the game and copies artifact into the game directory,
// replacing any previous copy. Without a game directory nothing happens.
func install(ctx context.Context, opts Options, artifact string) (string, error) {
	if opts.GameDir == "" {
		return "", nil
	}
	if _, err := os.Stat(artifact); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoArtifact, artifact)
	}

	n, err := opts.Closer.CloseProcesses(ctx, opts.ProcessName)
	if err != nil {
		return "", err
	}
	if n > 0 {
		log.Printf("packaging: closed %d %s process(es) before install", n, opts.ProcessName)
	}

	dst := filepath.Join(opts.GameDir, filepath.Base(artifact))
	if err := copyFile(artifact, dst); err != nil {
		return "", err
	}
	log.Printf("packaging: installed %s", dst)
	return dst, nil
}

// copyFile writes to a temp file in the destination directory and renames it
// over dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("packaging: open %s: %w", src, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".install-*")
	if err != nil {
		return fmt.Errorf("packaging: install into %s: %w", filepath.Dir(dst), err)
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("packaging: copy to %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("packaging: copy to %s: %w", dst, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("packaging: replace %s: %w", dst, err)
	}
	return nil
}
