//go:build linux

package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOSInfoLinux(t *testing.T) {
	info, err := NewHostProvider().OS()
	require.NoError(t, err)

	assert.Equal(t, "Linux", info.Type)
	assert.NotEmpty(t, info.Release)
	assert.NotEmpty(t, info.Hostname)
	assert.Positive(t, info.TotalMemory)
	assert.LessOrEqual(t, info.FreeMemory, info.TotalMemory)
	assert.Positive(t, info.CPUCores)
	assert.NotEmpty(t, info.CPUModel)
	for _, load := range info.LoadAverage {
		assert.GreaterOrEqual(t, load, 0.0)
	}
}

func TestProcessStartTimeLinux(t *testing.T) {
	start, err := processStartTime()
	require.NoError(t, err)
	assert.False(t, start.After(time.Now()))
	assert.WithinDuration(t, time.Now(), start, time.Hour)
}

func TestUptimeCoversProcessLifetime(t *testing.T) {
	lifetime := time.Since(initTime)
	assert.GreaterOrEqual(t, uptime(), lifetime)
}
