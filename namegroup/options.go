package namegroup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JARVIS-AI/n2b/endian"
	"github.com/JARVIS-AI/n2b/errs"
	"github.com/JARVIS-AI/n2b/format"
	"github.com/JARVIS-AI/n2b/internal/options"
)

// DefaultMaxSectionSize bounds how many bytes Read will consume for one table.
const DefaultMaxSectionSize = 16 * 1024 * 1024

type buildConfig struct {
	maxNames     int // 0 means unlimited
	validateUTF8 bool
}

// BuildOption configures Build.
type BuildOption = options.Option[*buildConfig]

// WithMaxNames limits the number of unique names a table may hold.
// Zero removes the limit.
func WithMaxNames(n int) BuildOption {
	return options.New(func(c *buildConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: max names %d is negative", errs.ErrInvalidOption, n)
		}
		c.maxNames = n

		return nil
	})
}

// WithUTF8Validation rejects names that are not valid UTF-8.
// By default names are treated as raw bytes.
func WithUTF8Validation(enabled bool) BuildOption {
	return options.NoError(func(c *buildConfig) {
		c.validateUTF8 = enabled
	})
}

type codecConfig struct {
	engine         endian.EndianEngine
	logger         *slog.Logger
	maxSectionSize int64
}

func newCodecConfig() *codecConfig {
	return &codecConfig{
		engine:         endian.GetLittleEndianEngine(),
		maxSectionSize: DefaultMaxSectionSize,
	}
}

func (c *codecConfig) debugEnabled() bool {
	return c.logger != nil && c.logger.Enabled(context.Background(), slog.LevelDebug)
}

// CodecOption configures a Writer or a Read/Parse call.
type CodecOption = options.Option[*codecConfig]

// WithLittleEndian encodes header offsets as little-endian. This is the default.
func WithLittleEndian() CodecOption {
	return options.NoError(func(c *codecConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian encodes header offsets as big-endian.
func WithBigEndian() CodecOption {
	return options.NoError(func(c *codecConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithEndianness selects the header byte order by value.
func WithEndianness(e format.Endianness) CodecOption {
	return options.New(func(c *codecConfig) error {
		if !e.IsValid() {
			return fmt.Errorf("%w: endianness %s", errs.ErrInvalidOption, e)
		}
		c.engine = endian.GetEngine(e)

		return nil
	})
}

// WithLogger logs every name written or read at debug level.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) CodecOption {
	return options.NoError(func(c *codecConfig) {
		c.logger = logger
	})
}

// WithMaxSectionSize bounds the bytes Read consumes for one table.
// It has no effect on writing.
func WithMaxSectionSize(n int64) CodecOption {
	return options.New(func(c *codecConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max section size %d must be positive", errs.ErrInvalidOption, n)
		}
		c.maxSectionSize = n

		return nil
	})
}
