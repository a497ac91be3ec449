package namegroup

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/JARVIS-AI/n2b/errs"
	"github.com/JARVIS-AI/n2b/internal/nameindex"
	"github.com/JARVIS-AI/n2b/internal/options"
	"github.com/JARVIS-AI/n2b/section"
)

// Parse decodes a name-group table of count names from data, which must hold
// the section starting at baseOffset. Trailing bytes after the last name are
// ignored.
//
// The decoded offsets must be the packed sequence Build would produce for the
// decoded names; any other layout fails with errs.ErrConsistency.
func Parse(data []byte, baseOffset uint32, count int, opts ...CodecOption) (*NameTable, error) {
	cfg := newCodecConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return parse(data, baseOffset, count, cfg)
}

func parse(data []byte, baseOffset uint32, count int, cfg *codecConfig) (*NameTable, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidNameCount, count)
	}

	if count > len(data)/section.NameOffsetSize {
		return nil, fmt.Errorf("%w: %w: %d offsets do not fit in %d bytes",
			errs.ErrTruncated, errs.ErrInvalidNameCount, count, len(data))
	}

	headerSize := count * section.NameOffsetSize
	debug := cfg.debugEnabled()

	blob := data[headerSize:]
	blobStart := int64(baseOffset) + int64(headerSize)

	names := make([]string, count)
	offsets := make([]uint32, count)
	seen := nameindex.New(count)
	for i := 0; i < count; i++ {
		off, err := section.ParseNameOffset(data[i*section.NameOffsetSize:], cfg.engine)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}

		name, err := section.ReadName(blob, int(int64(off)-blobStart))
		if err != nil {
			return nil, fmt.Errorf("name %d at offset %d: %w", i, off, err)
		}

		if _, added := seen.Add(name); !added {
			return nil, fmt.Errorf("%w: %q at position %d", errs.ErrDuplicateName, name, i)
		}

		names[i] = name
		offsets[i] = off

		if debug {
			cfg.logger.Debug("name group", "index", i, "name", name, "offset", off)
		}
	}

	t, err := Build(baseOffset, names)
	if err != nil {
		return nil, err
	}

	for i, e := range t.entries {
		if e.StartOffset != offsets[i] {
			return nil, fmt.Errorf("%w: name %d at offset %d, packed layout expects %d",
				errs.ErrConsistency, i, offsets[i], e.StartOffset)
		}
	}

	return t, nil
}

// Read seeks r to baseOffset and decodes a name-group table of count names.
//
// Read never consumes more than the configured maximum section size. The
// stream position afterwards is unspecified. I/O failures, including a stream
// that ends inside the table, are reported as errs.ErrIO.
func Read(r io.ReadSeeker, baseOffset uint32, count int, opts ...CodecOption) (*NameTable, error) {
	cfg := newCodecConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidNameCount, count)
	}

	if int64(count) > cfg.maxSectionSize/section.NameOffsetSize {
		return nil, fmt.Errorf("%w: %d offsets exceed section limit %d", errs.ErrInvalidNameCount, count, cfg.maxSectionSize)
	}

	headerSize := int64(count) * section.NameOffsetSize

	if _, err := r.Seek(int64(baseOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek to %d: %w", errs.ErrIO, baseOffset, err)
	}

	data := make([]byte, headerSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", errs.ErrIO, err)
	}

	if count == 0 {
		return parse(data, baseOffset, count, cfg)
	}

	// Names are packed, so everything up to the last offset belongs to the
	// table and only the last name has to be scanned for its terminator.
	lastOff, err := section.ParseNameOffset(data[headerSize-section.NameOffsetSize:], cfg.engine)
	if err != nil {
		return nil, err
	}

	prefix := int64(lastOff) - int64(baseOffset) - headerSize
	if prefix < 0 || headerSize+prefix >= cfg.maxSectionSize {
		return nil, fmt.Errorf("%w: last name at offset %d", errs.ErrInvalidOffset, lastOff)
	}

	data = append(data, make([]byte, prefix)...)
	if _, err := io.ReadFull(r, data[headerSize:]); err != nil {
		return nil, fmt.Errorf("%w: read names: %w", errs.ErrIO, err)
	}

	br := bufio.NewReader(io.LimitReader(r, cfg.maxSectionSize-int64(len(data))))
	last, err := br.ReadSlice(section.NameTerminator)
	for errors.Is(err, bufio.ErrBufferFull) {
		data = append(data, last...)
		last, err = br.ReadSlice(section.NameTerminator)
	}
	data = append(data, last...)

	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w: last name at offset %d", errs.ErrIO, errs.ErrMissingTerminator, lastOff)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read last name: %w", errs.ErrIO, err)
	}

	return parse(data, baseOffset, count, cfg)
}
