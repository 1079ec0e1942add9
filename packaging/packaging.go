// Package packaging turns a compiled level into the artifact the game loads
// and installs it into the game directory.
package packaging

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Mode selects how a level is packaged.
type Mode string

const (
	// ModeXML writes the level file only.
	ModeXML Mode = "xml"
	// ModeZlib packs the asset directory and the level into a zlib
	// compressed tar stream.
	ModeZlib Mode = "zlib"
	// ModeDZ hands the level to the external dzip compile script.
	ModeDZ Mode = "dz"
)

const (
	ArtifactName       = "level_xml.dz"
	LevelDirName       = "level_xml"
	DefaultScript      = "compile-map.bat"
	DefaultProcessName = "Vector"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeXML, ModeZlib, ModeDZ:
		return m, nil
	}
	return "", fmt.Errorf("packaging: unknown mode %q", s)
}

// Artifact is one compiled level ready for packaging.
type Artifact struct {
	// FileName is the level file name inside level_xml/, e.g.
	// DOWNTOWN_STORY_02.xml.
	FileName string
	Level    io.WriterTo
}

type Result struct {
	BuildID uuid.UUID
	Mode    Mode
	// LevelPath is where the level XML was written.
	LevelPath string
	// ArchivePath is the packed artifact, empty in xml mode.
	ArchivePath string
	Size        int64
	// InstalledPath is the copy in the game directory, empty when nothing
	// was installed.
	InstalledPath string
}

type Packager interface {
	Package(ctx context.Context, a Artifact) (Result, error)
}

type Options struct {
	OutDir      string
	AssetDir    string
	ScriptDir   string
	Script      string
	GameDir     string
	ProcessName string
	// Closer stops the running game before install. Nil uses the system
	// process table.
	Closer ProcessCloser
}

// New returns the packager for mode.
func New(mode Mode, opts Options) (Packager, error) {
	if opts.ProcessName == "" {
		opts.ProcessName = DefaultProcessName
	}
	if opts.Script == "" {
		opts.Script = DefaultScript
	}
	if opts.Closer == nil {
		opts.Closer = SystemProcesses{}
	}
	switch mode {
	case ModeXML:
		return &XMLPackager{opts: opts}, nil
	case ModeZlib:
		return &ZlibPackager{opts: opts}, nil
	case ModeDZ:
		return &ScriptPackager{opts: opts}, nil
	}
	return nil, fmt.Errorf("packaging: unknown mode %q", mode)
}

// XMLPackager writes <OutDir>/level_xml/<FileName> and nothing else.
type XMLPackager struct {
	opts Options
}

func (p *XMLPackager) Package(ctx context.Context, a Artifact) (Result, error) {
	res := Result{BuildID: uuid.New(), Mode: ModeXML}
	path, n, err := writeLevel(p.opts.OutDir, a)
	if err != nil {
		return res, err
	}
	res.LevelPath, res.Size = path, n
	log.Printf("packaging: build %s wrote %s (%s)", res.BuildID, path, humanize.Bytes(uint64(n)))
	return res, nil
}

// writeLevel serializes the level into <dir>/level_xml/.
func writeLevel(dir string, a Artifact) (string, int64, error) {
	if a.Level == nil || a.FileName == "" {
		return "", 0, fmt.Errorf("packaging: artifact has no level")
	}
	levelDir := filepath.Join(dir, LevelDirName)
	if err := os.MkdirAll(levelDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("packaging: create %s: %w", levelDir, err)
	}
	path := filepath.Join(levelDir, a.FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("packaging: create %s: %w", path, err)
	}
	n, err := a.Level.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", 0, fmt.Errorf("packaging: write %s: %w", path, err)
	}
	return path, n, nil
}
