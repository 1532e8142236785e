package install

import "fmt"

// TransferError reports the first manifest entry that could not be fetched
// or written. The install halts at that entry; earlier files are already on
// disk and later ones were never attempted. Re-running recovers cleanly
// since every write is idempotent.
type TransferError struct {
	// Path is the destination-relative path of the failed entry.
	Path string
	// Err is the underlying fetch or filesystem error.
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("installing %s: %v", e.Path, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
