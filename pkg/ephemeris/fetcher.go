package ephemeris

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is the VizieR mirror of the VSOP87 catalog (VI/81).
const DefaultBaseURL = "https://cdsarc.cds.unistra.fr/ftp/VI/81"

// vsop87Files are the data files the provider may load, one per planet.
var vsop87Files = []string{
	"VSOP87B.mer",
	"VSOP87B.ven",
	"VSOP87B.ear",
	"VSOP87B.mar",
	"VSOP87B.jup",
	"VSOP87B.sat",
	"VSOP87B.ura",
	"VSOP87B.nep",
}

// DefaultCacheDir returns the per-user ephemeris cache directory,
// ~/.cache/radecbot.
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "radecbot"), nil
}

// Fetcher downloads VSOP87B data files into a local cache directory.
// Files already present are never re-downloaded.
type Fetcher struct {
	baseURL    string
	dir        string
	httpClient *http.Client
}

// NewFetcher creates a fetcher for the given cache directory. An empty
// baseURL selects DefaultBaseURL.
func NewFetcher(baseURL, dir string) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		baseURL:    baseURL,
		dir:        dir,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Ensure downloads any data files missing from the cache directory and
// returns the directory path for use with NewVSOP87Provider.
func (f *Fetcher) Ensure(ctx context.Context) (string, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	for _, name := range vsop87Files {
		path := filepath.Join(f.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := f.download(ctx, name, path); err != nil {
			return "", err
		}
	}
	return f.dir, nil
}

// download fetches one data file, writing through a temp file so an
// interrupted transfer never leaves a truncated file in the cache.
func (f *Fetcher) download(ctx context.Context, name, path string) error {
	url := f.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", name, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad response fetching %s (status %d)", name, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(f.dir, name+".partial-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving %s into cache: %w", name, err)
	}
	return nil
}
