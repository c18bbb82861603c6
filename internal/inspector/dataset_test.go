package inspector

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func buildTestArchive(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	write("sc-inspector-data-main/data/hcloud/cx11/lscpu/stdout", `{"lscpu":[{"field":"BogoMIPS:","data":"100.0"}]}`)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDataset_FetchAndRoot(t *testing.T) {
	archive := buildTestArchive(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	d := NewFromURL(srv.URL)
	defer d.Close()

	root, err := d.Root()
	if err != nil {
		t.Fatalf("Root: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "hcloud", "cx11", "lscpu", "stdout")); err != nil {
		t.Errorf("expected extracted file to exist: %v", err)
	}

	root2, err := d.Root()
	if err != nil || root2 != root {
		t.Errorf("expected Root to be memoized, got %q (err=%v)", root2, err)
	}
}

func TestDataset_FetchFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	d := NewFromURL(srv.URL)
	if _, err := d.Root(); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}

func TestDataset_CloseBeforeFetchIsNoop(t *testing.T) {
	d := New()
	if err := d.Close(); err != nil {
		t.Errorf("expected no error closing an unfetched Dataset, got %v", err)
	}
}
