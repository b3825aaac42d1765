package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// WritePage persists one rendered page under the output directory
func WritePage(outDir, filename, content string) error {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory at '%s' with %w", outDir, err)
	}
	target := filepath.Join(outDir, filename)
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write page at '%s' with %w", target, err)
	}
	slog.Info("page generated", "at", target)
	return nil
}

// CopyAssets copies every regular file from the assets directory into the
// output directory verbatim (stylesheet, script)
func CopyAssets(assetsDir, outDir string) error {
	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		return fmt.Errorf("failed to read assets directory at '%s' with %w", assetsDir, err)
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory at '%s' with %w", outDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(assetsDir, entry.Name()), filepath.Join(outDir, entry.Name())); err != nil {
			return err
		}
		slog.Debug("asset copied", "name", entry.Name())
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open asset '%s' with %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create asset copy '%s' with %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy asset to '%s' with %w", dst, err)
	}
	return nil
}
