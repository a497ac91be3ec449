// Package n2b encodes the name-group table of NieR COL collision files.
//
// A COL file references its collision meshes by name. The names live in a
// single table: a header of 4-byte absolute offsets, one per unique name,
// followed by the names themselves, each terminated by a NUL byte. The
// exporter builds the table from the ordered mesh names of the scene, reserves
// StructSize bytes at a base offset, and writes the table there once the rest
// of the file is laid out.
//
// # Basic Usage
//
//	table, err := n2b.BuildNameGroups(offsetNameGroups, meshNames)
//	if err != nil {
//	    return err
//	}
//
//	// other sections reference names by table position
//	idx, _ := table.IndexOf("Collision_Body")
//
//	if err := n2b.WriteNameGroups(f, table); err != nil {
//	    return err
//	}
//
// Reading the table back:
//
//	table, err := n2b.ReadNameGroups(f, offsetNameGroups, nameGroupCount)
//
// # Package Structure
//
// These wrappers use the COL defaults (little-endian offsets, raw-byte names).
// Use package namegroup directly for byte order, logging and validation
// options, and package section for the layout primitives.
package n2b

import (
	"io"

	"github.com/JARVIS-AI/n2b/namegroup"
)

// BuildNameGroups builds the name-group table for names, deduplicated in
// first-seen order, with its header at baseOffset.
func BuildNameGroups(baseOffset uint32, names []string) (*namegroup.NameTable, error) {
	return namegroup.Build(baseOffset, names)
}

// WriteNameGroups writes table at the base offset it was built for.
func WriteNameGroups(w io.WriteSeeker, table *namegroup.NameTable) error {
	if table == nil {
		_, err := namegroup.Write(w, nil, 0)
		return err
	}

	_, err := namegroup.Write(w, table, table.BaseOffset())

	return err
}

// ReadNameGroups reads a table of count names whose header is at baseOffset.
func ReadNameGroups(r io.ReadSeeker, baseOffset uint32, count int) (*namegroup.NameTable, error) {
	return namegroup.Read(r, baseOffset, count)
}
