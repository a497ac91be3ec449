package namegroup

import (
	"fmt"
	"unicode/utf8"

	"github.com/JARVIS-AI/n2b/errs"
	"github.com/JARVIS-AI/n2b/internal/nameindex"
	"github.com/JARVIS-AI/n2b/internal/options"
	"github.com/JARVIS-AI/n2b/section"
)

// Build deduplicates names in first-seen order and lays them out as a
// name-group table whose header begins at baseOffset.
//
// The first name starts right after the header, at baseOffset + 4*N, and each
// following name starts right after the previous name's terminator. An empty
// names slice yields an empty table with StructSize 0.
//
// Build fails with errs.ErrEncoding when a name contains a NUL byte, when
// UTF-8 validation is enabled and a name is not valid UTF-8, when the unique
// name count exceeds the configured limit, or when an offset would not fit in
// 32 bits. Names are compared byte by byte; no Unicode normalization is applied.
func Build(baseOffset uint32, names []string, opts ...BuildOption) (*NameTable, error) {
	cfg := &buildConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	index := nameindex.New(len(names))
	for i, name := range names {
		if err := cfg.validate(name); err != nil {
			return nil, fmt.Errorf("name %d: %w", i, err)
		}

		if _, added := index.Add(name); added && cfg.maxNames > 0 && index.Len() > cfg.maxNames {
			return nil, fmt.Errorf("%w: %w: more than %d unique names", errs.ErrEncoding, errs.ErrTooManyNames, cfg.maxNames)
		}
	}

	unique := index.Names()
	entries := make([]section.NameGroup, len(unique))

	cursor := uint64(baseOffset) + uint64(len(unique))*section.NameOffsetSize
	for i, name := range unique {
		if cursor > section.MaxOffset {
			return nil, fmt.Errorf("%w: %w: name %q would start at %d", errs.ErrEncoding, errs.ErrOffsetOverflow, name, cursor)
		}

		entries[i] = section.NameGroup{Name: name, StartOffset: uint32(cursor)}
		cursor += uint64(len(name)) + 1
	}

	if cursor > uint64(section.MaxOffset)+1 {
		return nil, fmt.Errorf("%w: %w: table ends at %d", errs.ErrEncoding, errs.ErrOffsetOverflow, cursor)
	}

	structSize := cursor - uint64(baseOffset)
	if structSize > section.MaxOffset {
		return nil, fmt.Errorf("%w: %w: table size %d", errs.ErrEncoding, errs.ErrOffsetOverflow, structSize)
	}

	return &NameTable{
		baseOffset: baseOffset,
		structSize: uint32(structSize),
		entries:    entries,
		index:      index,
	}, nil
}

func (c *buildConfig) validate(name string) error {
	if err := section.ValidateName(name); err != nil {
		return err
	}

	if c.validateUTF8 && !utf8.ValidString(name) {
		return fmt.Errorf("%w: %w: %q", errs.ErrEncoding, errs.ErrInvalidUTF8, name)
	}

	return nil
}
