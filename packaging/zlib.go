package packaging

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zlib"
)

// ZlibPackager builds level_xml.dz in-process: a tar stream holding the asset
// directory and level_xml/<FileName>, compressed with zlib.
type ZlibPackager struct {
	opts Options
}

func (p *ZlibPackager) Package(ctx context.Context, a Artifact) (Result, error) {
	res := Result{BuildID: uuid.New(), Mode: ModeZlib}
	levelPath, _, err := writeLevel(p.opts.OutDir, a)
	if err != nil {
		return res, err
	}
	res.LevelPath = levelPath

	archive := filepath.Join(p.opts.OutDir, ArtifactName)
	n, err := writeArchive(ctx, archive, p.opts.AssetDir, levelPath, a.FileName)
	if err != nil {
		return res, err
	}
	res.ArchivePath, res.Size = archive, n
	log.Printf("packaging: build %s packed %s (%s)", res.BuildID, archive, humanize.Bytes(uint64(n)))

	installed, err := install(ctx, p.opts, archive)
	if err != nil {
		return res, err
	}
	res.InstalledPath = installed
	return res, nil
}

func writeArchive(ctx context.Context, dst, assetDir, levelPath, levelName string) (int64, error) {
	f, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("packaging: create %s: %w", dst, err)
	}
	defer f.Close()

	zw, err := zlib.NewWriterLevel(f, zlib.BestCompression)
	if err != nil {
		return 0, fmt.Errorf("packaging: zlib: %w", err)
	}
	tw := tar.NewWriter(zw)

	if assetDir != "" {
		if err := addDir(ctx, tw, assetDir); err != nil {
			return 0, err
		}
	}
	if err := addFile(tw, levelPath, LevelDirName+"/"+levelName); err != nil {
		return 0, err
	}

	if err := tw.Close(); err != nil {
		return 0, fmt.Errorf("packaging: close tar: %w", err)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("packaging: close zlib: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("packaging: stat %s: %w", dst, err)
	}
	return info.Size(), nil
}

// addDir adds every regular file under root. A missing root is skipped.
func addDir(ctx context.Context, tw *tar.Writer, root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Printf("packaging: asset dir %s not found, packing level only", root)
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return addFile(tw, path, filepath.ToSlash(rel))
	})
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("packaging: open %s: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("packaging: stat %s: %w", path, err)
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("packaging: header %s: %w", path, err)
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("packaging: header %s: %w", name, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("packaging: pack %s: %w", name, err)
	}
	return nil
}
