package model

const (
	// DefaultFetchLimit bounds how many recent commits one pass fetches per
	// branch. A branch with more new commits than this since the last pass
	// will only be partially scanned; see UseCase.ScanTarget.
	DefaultFetchLimit = 10

	// DefaultMaxBlobSize is the file-content scan ceiling in bytes. Larger
	// blobs are skipped to bound cost and avoid binary content.
	DefaultMaxBlobSize = 1_000_000
)

// ScanPolicy controls what one scan pass inspects.
type ScanPolicy struct {
	FetchLimit  int
	ScanFiles   bool
	MaxBlobSize int64
}

// DefaultScanPolicy returns the policy used when the watch config leaves the
// polling knobs unset.
func DefaultScanPolicy() ScanPolicy {
	return ScanPolicy{
		FetchLimit:  DefaultFetchLimit,
		MaxBlobSize: DefaultMaxBlobSize,
	}
}
