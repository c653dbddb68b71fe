// Package recovery decides whether a tombstoned directory entry can
// be safely restored, and carries out the restore.
package recovery

import (
	"github.com/shubham030/fatrescue/internal/fat"
)

// ClusterChain follows the FAT from start, collecting cluster numbers
// until the chain's estimated on-disk length exceeds fileSize by more
// than one sector, or the walker reaches a non-chainable marker —
// whichever comes first. The one-sector-over cutoff mirrors the
// original validator's early stop and keeps a corrupted or looping
// chain from being walked forever.
func ClusterChain(w *fat.Walker, start uint32, fileSize int, sectorSize int) ([]uint32, error) {
	if start < 2 {
		return nil, nil
	}

	var chain []uint32
	remaining := fileSize
	current := start

	for {
		if remaining < -sectorSize {
			break
		}
		remaining -= sectorSize
		chain = append(chain, current)

		next, marker, err := w.NextCluster(current)
		if err != nil {
			return chain, err
		}
		if !fat.IsChainable(marker) {
			break
		}
		current = next
	}
	return chain, nil
}

// VerifySize reports whether a cluster chain's on-disk length
// brackets fileSize within one sector of slack — a file's last
// cluster is rarely used in full, so the chain is expected to run up
// to one sector past the recorded size and no further.
func VerifySize(chain []uint32, fileSize int, sectorSize int) bool {
	estimated := len(chain) * sectorSize
	if estimated < fileSize {
		return false
	}
	if estimated > fileSize+sectorSize {
		return false
	}
	return true
}

// ClustersCollide reports whether a and b share any cluster number.
func ClustersCollide(a, b []uint32) bool {
	seen := make(map[uint32]bool, len(a))
	for _, c := range a {
		seen[c] = true
	}
	for _, c := range b {
		if seen[c] {
			return true
		}
	}
	return false
}

// Validate reports whether candidate is safe to restore: its own
// chain must bracket its recorded size (meaning nothing truncated it
// into a free/bad cluster early), and no entry modified more recently
// than candidate may share a cluster with it — a later write is the
// only thing that could have overwritten candidate's data since it
// was deleted.
func Validate(w *fat.Walker, all []fat.ScannedEntry, candidate fat.ScannedEntry, sectorSize int) (bool, error) {
	chain, err := ClusterChain(w, candidate.StartCluster, int(candidate.FileSize), sectorSize)
	if err != nil {
		return false, err
	}
	if !VerifySize(chain, int(candidate.FileSize), sectorSize) {
		return false, nil
	}

	for _, other := range all {
		if other.BytePosition == candidate.BytePosition {
			continue
		}
		if other.ModTimestamp <= candidate.ModTimestamp {
			continue
		}

		otherChain, err := ClusterChain(w, other.StartCluster, int(other.FileSize), sectorSize)
		if err != nil {
			return false, err
		}
		if ClustersCollide(chain, otherChain) {
			return false, nil
		}
	}
	return true, nil
}
