package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the shape of the simulated machine.
type Config struct {
	PageBits      uint64
	NumPages      int
	RAMSize       uint64
	SwapSize      uint64
	TLBCapacity   int
	AccessLatency time.Duration
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		PageBits:    8,
		NumPages:    16384,
		RAMSize:     1 << 20,
		SwapSize:    16 << 20,
		TLBCapacity: 256,
	}
}

// Environment variables that override the defaults.
const (
	EnvPageBits      = "VMSIM_PAGE_BITS"
	EnvNumPages      = "VMSIM_NUM_PAGES"
	EnvRAMSize       = "VMSIM_RAM_SIZE"
	EnvSwapSize      = "VMSIM_SWAP_SIZE"
	EnvTLBCapacity   = "VMSIM_TLB_CAPACITY"
	EnvAccessLatency = "VMSIM_ACCESS_LATENCY"
)

// loadDotEnv reads the .env files into the environment. Missing files are
// skipped. Variables already set are kept.
func loadDotEnv(filenames ...string) error {
	for _, f := range filenames {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

// ConfigFromEnv overrides the defaults with the variables that getenv knows.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	c := DefaultConfig()

	var err error

	if v := getenv(EnvPageBits); v != "" {
		c.PageBits, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvPageBits, err)
		}
	}

	if v := getenv(EnvNumPages); v != "" {
		c.NumPages, err = strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvNumPages, err)
		}
	}

	if v := getenv(EnvRAMSize); v != "" {
		c.RAMSize, err = ParseSize(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvRAMSize, err)
		}
	}

	if v := getenv(EnvSwapSize); v != "" {
		c.SwapSize, err = ParseSize(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvSwapSize, err)
		}
	}

	if v := getenv(EnvTLBCapacity); v != "" {
		c.TLBCapacity, err = strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvTLBCapacity, err)
		}
	}

	if v := getenv(EnvAccessLatency); v != "" {
		c.AccessLatency, err = time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvAccessLatency, err)
		}
	}

	return c, nil
}

// ParseSize parses a byte count with an optional K, M or G suffix (powers
// of 1024).
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	s = strings.TrimSuffix(s, "B")

	shift := 0

	switch {
	case strings.HasSuffix(s, "K"):
		shift = 10
	case strings.HasSuffix(s, "M"):
		shift = 20
	case strings.HasSuffix(s, "G"):
		shift = 30
	}

	if shift > 0 {
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}

	if n > math.MaxUint64>>shift {
		return 0, fmt.Errorf("size %s overflows 64 bits", s)
	}

	return n << shift, nil
}

// Validate reports the first setting that the simulator cannot be built
// with.
func (c Config) Validate() error {
	if c.PageBits == 0 || c.PageBits > 32 {
		return fmt.Errorf("page bits %d out of range [1, 32]", c.PageBits)
	}

	pageSize := uint64(1) << c.PageBits

	if c.NumPages <= 0 {
		return fmt.Errorf("number of pages %d must be positive", c.NumPages)
	}

	if c.RAMSize == 0 || c.RAMSize%pageSize != 0 {
		return fmt.Errorf("RAM size %d must be a positive multiple of the "+
			"page size %d", c.RAMSize, pageSize)
	}

	if c.SwapSize%pageSize != 0 {
		return fmt.Errorf("swap size %d must be a multiple of the page "+
			"size %d", c.SwapSize, pageSize)
	}

	if c.TLBCapacity <= 0 {
		return fmt.Errorf("TLB capacity %d must be positive", c.TLBCapacity)
	}

	if c.AccessLatency < 0 {
		return fmt.Errorf("access latency %v must not be negative",
			c.AccessLatency)
	}

	return nil
}

func envOrDefault() Config {
	err := loadDotEnv(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	c, err := ConfigFromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring the environment: %v\n", err)
		return DefaultConfig()
	}

	return c
}
