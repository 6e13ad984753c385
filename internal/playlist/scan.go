package playlist

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/llehouerou/tracklist/internal/filetype"
)

const numWorkers = 8

// DiscoverFiles expands paths into music files. Directories are walked
// recursively and only files with a known music extension are kept;
// plain file arguments are kept as given. Walk errors skip the entry.
func DiscoverFiles(paths []string) []string {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			files = append(files, p)
			continue
		}
		_ = filepath.WalkDir(p, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil //nolint:nilerr // keep walking the other entries
			}
			if d.IsDir() || filetype.FromExtension(path) == filetype.Unknown {
				return nil
			}
			files = append(files, path)
			return nil
		})
	}
	return files
}

// Collect reads the tags of every music file under paths in parallel.
// Tracks keep the discovery order; unreadable files are skipped and their
// errors returned alongside.
func Collect(paths []string) ([]Track, []error) {
	files := DiscoverFiles(paths)

	type result struct {
		track Track
		err   error
	}
	results := make([]result, len(files))

	work := make(chan int)
	var wg sync.WaitGroup
	for range min(numWorkers, len(files)) {
		wg.Go(func() {
			for i := range work {
				t, err := TrackFromFile(files[i])
				results[i] = result{track: t, err: err}
			}
		})
	}
	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()

	var tracks []Track
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		tracks = append(tracks, r.track)
	}
	return tracks, errs
}
