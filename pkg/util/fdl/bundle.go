package fdl

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/dustin/go-humanize"
	"github.com/richard-senior/footballlab/internal/logger"
	"github.com/richard-senior/footballlab/pkg/util"
)

// WriteBundle packs every CSV of the dataset into a brotli compressed tar at path.
// Entries carry the season start date as their time so the bundle is reproducible.
func (ds *Dataset) WriteBundle(path string) error {
	files, err := ds.EncodeFiles()
	if err != nil {
		return err
	}
	year, err := GetFirstYear(ds.Season)
	if err != nil {
		return err
	}
	modTime := time.Date(year, time.August, 1, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	tw := tar.NewWriter(bw)
	for _, name := range ds.Files() {
		data := files[name]
		hdr := &tar.Header{
			Name:    name,
			Mode:    0644,
			Size:    int64(len(data)),
			ModTime: modTime,
			Format:  tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s to bundle: %w", name, err)
		}
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to close tar: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("failed to close brotli stream: %w", err)
	}

	if err := util.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write bundle %s: %w", path, err)
	}
	logger.Info("Wrote bundle", path, humanize.Bytes(uint64(buf.Len())))
	return nil
}

// ReadBundle unpacks a bundle written by WriteBundle, keyed by file name
func ReadBundle(path string) (map[string][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle %s: %w", path, err)
	}
	defer f.Close()

	files := map[string][]byte{}
	tr := tar.NewReader(brotli.NewReader(f))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read bundle %s: %w", path, err)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from bundle: %w", hdr.Name, err)
		}
		files[hdr.Name] = data
	}
	return files, nil
}
