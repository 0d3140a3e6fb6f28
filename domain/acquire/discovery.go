package acquire

import (
	"path/filepath"
	"sort"
	"strconv"
)

// ListDevices enumerates video capture device paths, sorted by device
// number rather than lexically (video10 sorts after video9).
func ListDevices() ([]string, error) {
	return listDevices(devPathPrefix + "*")
}

func listDevices(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool {
		return deviceNumber(matches[i]) < deviceNumber(matches[j])
	})
	return matches, nil
}

// deviceNumber extracts the trailing device index, or -1 when there is none.
func deviceNumber(path string) int {
	i := len(path)
	for i > 0 && path[i-1] >= '0' && path[i-1] <= '9' {
		i--
	}
	if i == len(path) {
		return -1
	}
	n, err := strconv.Atoi(path[i:])
	if err != nil {
		return -1
	}
	return n
}
