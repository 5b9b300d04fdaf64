package constants

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return v
}

func GetIndexDir() string {
	return getEnv("INDEX_PATH", "./out")
}

func GetIndexFile() string {
	return filepath.Join(GetIndexDir(), IndexFilename)
}

// GetMediaDir is where `index` looks for MIDI files when no directory is given.
func GetMediaDir() string {
	return getEnv("MEDIA_PATH", ".")
}

func GetAddr() string {
	return getEnv("STAFF_ADDR", ":8080")
}

func GetMidiPort() int {
	return getEnvInt("STAFF_MIDI_PORT", 0)
}

func GetDebounce() time.Duration {
	return time.Duration(getEnvInt("STAFF_DEBOUNCE_MS", 150)) * time.Millisecond
}

func GetLogLevel() string {
	return getEnv("STAFF_LOG_LEVEL", "info")
}

const IndexFilename = "index.dat"

// sonorities outside this size are not worth naming
const (
	MinSonoritySize = 2
	MaxSonoritySize = 16
)

const (
	TicksPerQuarter = 960
	DefaultVelocity = 100
)
