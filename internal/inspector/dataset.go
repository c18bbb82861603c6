// Package inspector hydrates server hardware detail and harvests benchmark
// scores from the sc-inspector-data archive: a content-addressed tree of
// dmidecode/lscpu/nvidia-smi captures and framework benchmark runs, one
// directory per (vendor, server, inspector framework) triple, published as
// a zip snapshot on GitHub.
//
// Every lookup here is best-effort: a missing file or an unparsable line
// leaves the corresponding Server field untouched rather than failing the
// pull (ported from original_source/src/sc_crawler/inspector.py, whose
// per-field try/except blocks this package mirrors one by one).
package inspector

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const archiveURL = "https://github.com/SpareCores/sc-inspector-data/archive/refs/heads/main.zip"

// Dataset is a lazily-fetched, process-local copy of the inspector data
// archive extracted to a temp directory. Fetch is idempotent: concurrent and
// repeated calls share a single download+extract via sync.Once.
type Dataset struct {
	url string

	once    sync.Once
	fetchMu sync.Mutex
	root    string
	err     error
}

// New returns a Dataset bound to the default archive URL.
func New() *Dataset {
	return &Dataset{url: archiveURL}
}

// NewFromURL returns a Dataset bound to an alternate archive URL, mainly for
// tests that point at a local fixture server.
func NewFromURL(url string) *Dataset {
	return &Dataset{url: url}
}

// Root fetches and extracts the archive on first call, then returns the
// extracted tree's root directory on every subsequent call.
func (d *Dataset) Root() (string, error) {
	d.once.Do(func() {
		d.root, d.err = d.fetch()
	})
	return d.root, d.err
}

// Close removes the extracted tree, if one was ever fetched. Safe to call on
// a Dataset that was never used.
func (d *Dataset) Close() error {
	d.fetchMu.Lock()
	defer d.fetchMu.Unlock()
	if d.root == "" {
		return nil
	}
	err := os.RemoveAll(d.root)
	d.root = ""
	return err
}

func (d *Dataset) fetch() (string, error) {
	resp, err := http.Get(d.url)
	if err != nil {
		return "", fmt.Errorf("inspector: downloading %s: %w", d.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inspector: downloading %s: unexpected status %s", d.url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("inspector: reading archive body: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", fmt.Errorf("inspector: opening archive: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "sc-inspector-data-*")
	if err != nil {
		return "", fmt.Errorf("inspector: creating temp dir: %w", err)
	}

	if err := extractZip(zr, tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		return "", err
	}

	// GitHub's codeload zips nest everything under a single
	// "<repo>-<branch>/" directory, and the per-vendor directories
	// themselves live one level further down, under "data/".
	entries, err := os.ReadDir(tmpDir)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return tmpDir, nil
	}
	return filepath.Join(tmpDir, entries[0].Name(), "data"), nil
}

func extractZip(zr *zip.Reader, dest string) error {
	for _, f := range zr.File {
		path := filepath.Join(dest, f.Name)
		if !strings.HasPrefix(path, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("inspector: archive entry %q escapes extraction root", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := extractZipFile(f, path); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(f *zip.File, path string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("inspector: opening archive entry %q: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("inspector: creating %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("inspector: extracting %s: %w", path, err)
	}
	return nil
}
