package internals

import "fmt"

// Statistics collects data about a scan
type Statistics struct {
	CountFiles    uint32 `json:"count-files"`
	CountFailures uint32 `json:"count-failures"`
	TotalSize     uint64 `json:"total-size"`
}

func (s *Statistics) String() string {
	f := "files"
	if s.CountFiles == 1 {
		f = "file"
	}
	return fmt.Sprintf(`stats: %d %s hashed, %s total, %d skipped`, s.CountFiles, f, humanReadableBytes(s.TotalSize), s.CountFailures)
}

func (s *Statistics) addFile(size int64) {
	if size < 0 {
		size = 0
	}
	s.CountFiles++
	s.TotalSize += uint64(size)
}

func (s *Statistics) addFailure() {
	s.CountFailures++
}

func humanReadableBytes(count uint64) string {
	bytes := float64(count)
	units := []string{"bytes", "KiB", "MiB", "GiB", "TiB", "PiB"}
	for _, unit := range units {
		if bytes < 1024 {
			return fmt.Sprintf(`%.02f %s`, bytes, unit)
		}
		bytes /= 1024
	}
	return fmt.Sprintf(`%.02f EiB`, bytes)
}
