package pipeline

import "os"

// CacheStatus is the outcome of the clip cache lookup that opens the
// per-page state machine.
type CacheStatus int

const (
	// CacheMiss: no clip on disk, all stages run.
	CacheMiss CacheStatus = iota
	// CacheHit: a usable clip exists, every stage is skipped.
	CacheHit
	// CacheStale: a clip file exists but is unusable (zero bytes, typically
	// a crash mid-render); it must be rebuilt.
	CacheStale
)

func (s CacheStatus) String() string {
	switch s {
	case CacheHit:
		return "hit"
	case CacheStale:
		return "stale"
	default:
		return "miss"
	}
}

// LookupClip checks whether a page's clip already exists on disk. The check
// happens before any write for the same page, so a hit means nothing gets
// touched.
func LookupClip(path string) CacheStatus {
	info, err := os.Stat(path)
	if err != nil {
		return CacheMiss
	}
	if info.IsDir() || info.Size() == 0 {
		return CacheStale
	}
	return CacheHit
}
