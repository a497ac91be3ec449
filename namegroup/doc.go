// Package namegroup builds, writes and reads the name-group table of a COL
// collision file.
//
// The exporter first builds the table from the ordered object names of the
// current export pass, which fixes how many bytes the section needs, then
// writes the rest of the file and finally writes the table at the base offset
// it reserved:
//
//	table, err := namegroup.Build(offsetNameGroups, names)
//	if err != nil {
//	    return err
//	}
//	reserve := table.StructSize()
//	...
//	if _, err := namegroup.Write(f, table, offsetNameGroups); err != nil {
//	    return err
//	}
//
// Other sections refer to a name by its position in the table:
//
//	idx, ok := table.IndexOf("Collision_Body")
//
// Duplicate names are folded into their first occurrence. Names must not
// contain NUL bytes. See package section for the byte layout.
package namegroup
