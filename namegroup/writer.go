package namegroup

import (
	"fmt"
	"io"

	"github.com/JARVIS-AI/n2b/errs"
	"github.com/JARVIS-AI/n2b/internal/options"
	"github.com/JARVIS-AI/n2b/internal/pool"
)

// Writer serializes name-group tables into a seekable stream.
//
// A Writer holds only its configuration and is safe for concurrent use on
// different streams.
type Writer struct {
	cfg *codecConfig
}

// NewWriter creates a Writer. The default byte order is little-endian.
func NewWriter(opts ...CodecOption) (*Writer, error) {
	cfg := newCodecConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Writer{cfg: cfg}, nil
}

// Write seeks w to baseOffset and writes t's header offsets followed by its
// NUL-terminated names. It returns the number of bytes written, which equals
// t.StructSize() on success.
//
// baseOffset must be the offset t was built for; otherwise Write fails with
// errs.ErrConsistency before touching w. Seek and write failures are reported
// as errs.ErrIO and leave w's position and contents undefined. The stream
// position is not restored after writing.
func (wr *Writer) Write(w io.WriteSeeker, t *NameTable, baseOffset uint32) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil name table", errs.ErrConsistency)
	}

	if t.baseOffset != baseOffset {
		return 0, fmt.Errorf("%w: table built for offset %d, writing at %d", errs.ErrConsistency, t.baseOffset, baseOffset)
	}

	pos, err := w.Seek(int64(baseOffset), io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("%w: seek to %d: %w", errs.ErrIO, baseOffset, err)
	}
	if pos != int64(baseOffset) {
		return 0, fmt.Errorf("%w: seek to %d landed at %d", errs.ErrIO, baseOffset, pos)
	}

	bb := pool.GetTableBuffer()
	defer pool.PutTableBuffer(bb)

	bb.Grow(int(t.structSize))
	bb.B = t.AppendTo(bb.B, wr.cfg.engine)
	wr.logEntries(t)

	if bb.Len() == 0 {
		return 0, nil
	}

	n, err := bb.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("%w: write %d bytes at %d (%d written): %w", errs.ErrIO, bb.Len(), baseOffset, n, err)
	}

	return n, nil
}

func (wr *Writer) logEntries(t *NameTable) {
	if !wr.cfg.debugEnabled() {
		return
	}

	logger := wr.cfg.logger
	for i, e := range t.entries {
		logger.Debug("name group", "index", i, "name", e.Name, "offset", e.StartOffset)
	}
	logger.Debug("name table", "names", t.Len(), "size", t.structSize, "hash_collision", t.HasHashCollision())
}

// Write writes t at baseOffset using a Writer configured with opts.
func Write(w io.WriteSeeker, t *NameTable, baseOffset uint32, opts ...CodecOption) (int64, error) {
	wr, err := NewWriter(opts...)
	if err != nil {
		return 0, err
	}

	return wr.Write(w, t, baseOffset)
}
