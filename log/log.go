package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const fileName = "ttsicons_log.txt"

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absDir(flagPath)
	}

	// Priority 2: TTSICONS_LOG_PATH environment variable
	if envPath := os.Getenv("TTSICONS_LOG_PATH"); envPath != "" {
		return absDir(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absDir(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	var err error
	diagFile, err = os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func RunStart(backend, outDir string, sizes []int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("backend", backend).
		Str("out", outDir).
		Ints("sizes", sizes).
		Msg("run_start")
}

func IconWritten(size int, path string, bytes int, d time.Duration) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("size", size).
		Str("path", path).
		Int("bytes", bytes).
		Float64("render_ms", float64(d.Microseconds())/1000).
		Msg("icon_written")
}

func IconSkipped(size int, backend string) {
	if !logReady {
		return
	}
	diagLog.Warn().
		Int("size", size).
		Str("backend", backend).
		Msg("icon_skipped")
}

func RunEnd(created, skipped int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("created", created).
		Int("skipped", skipped).
		Msg("run_end")
}
