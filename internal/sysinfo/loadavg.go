package sysinfo

import (
	"encoding/binary"
	"fmt"
)

// loadAvgSize is sizeof(struct loadavg) on 64-bit BSD kernels: three
// fixed-point uint32 samples, padding, then the int64 scale.
const loadAvgSize = 24

// decodeLoadAvg converts the raw vm.loadavg sysctl value into the 1, 5 and
// 15 minute load averages.
func decodeLoadAvg(raw []byte) ([3]float64, error) {
	var load [3]float64
	if len(raw) < loadAvgSize {
		return load, fmt.Errorf("vm.loadavg: unexpected size %d", len(raw))
	}
	scale := float64(binary.LittleEndian.Uint64(raw[16:24]))
	if scale == 0 {
		return load, fmt.Errorf("vm.loadavg: zero scale")
	}
	for i := range load {
		load[i] = float64(binary.LittleEndian.Uint32(raw[i*4:])) / scale
	}
	return load, nil
}
