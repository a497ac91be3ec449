package namegroup

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/JARVIS-AI/n2b/errs"
	"github.com/JARVIS-AI/n2b/format"
	"github.com/stretchr/testify/require"
)

func TestWrite_ByteExactLayout(t *testing.T) {
	table, err := Build(0, []string{"foo", "bar"})
	require.NoError(t, err)

	f := newMemFile(nil)
	n, err := Write(f, table, 0)
	require.NoError(t, err)
	require.Equal(t, int64(16), n)
	require.Equal(t, uint32(16), table.StructSize())

	want := []byte{
		0x08, 0x00, 0x00, 0x00,
		0x0C, 0x00, 0x00, 0x00,
		'f', 'o', 'o', 0x00,
		'b', 'a', 'r', 0x00,
	}
	require.Equal(t, want, f.data)
}

func TestWrite_AtBaseOffset(t *testing.T) {
	const base = 100

	table, err := Build(base, []string{"ab", "c", "ab"})
	require.NoError(t, err)

	prefix := bytes.Repeat([]byte{0xAA}, 200)
	f := newMemFile(append([]byte(nil), prefix...))

	n, err := Write(f, table, base)
	require.NoError(t, err)
	require.Equal(t, int64(table.StructSize()), n)
	require.Equal(t, int64(base)+n, f.pos, "position is left after the table")

	require.Equal(t, prefix[:base], f.data[:base], "bytes before the table are untouched")
	require.Equal(t, []byte{108, 0, 0, 0, 111, 0, 0, 0, 'a', 'b', 0, 'c', 0}, f.data[base:base+n])
	require.Equal(t, prefix[base+n:], f.data[base+n:], "bytes after the table are untouched")
}

func TestWrite_MatchesMarshalBinary(t *testing.T) {
	table, err := Build(0, []string{"Collision_Body", "Collision_脚"})
	require.NoError(t, err)

	f := newMemFile(nil)
	_, err = Write(f, table, 0)
	require.NoError(t, err)

	raw, err := table.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, raw, f.data)
	require.Len(t, raw, int(table.StructSize()))
}

func TestWrite_Empty(t *testing.T) {
	table, err := Build(32, nil)
	require.NoError(t, err)

	f := newMemFile(nil)
	n, err := Write(f, table, 32)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
	require.Empty(t, f.data)
}

func TestWrite_EmptyIssuesNoWrite(t *testing.T) {
	table, err := Build(32, nil)
	require.NoError(t, err)

	n, err := Write(&brokenFile{failWrite: true, seekTo: -1}, table, 32)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestWrite_BigEndian(t *testing.T) {
	table, err := Build(0, []string{"foo", "bar"})
	require.NoError(t, err)

	f := newMemFile(nil)
	_, err = Write(f, table, 0, WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0x08, 0, 0, 0, 0x0C}, f.data[:8])

	f = newMemFile(nil)
	_, err = Write(f, table, 0, WithEndianness(format.BigEndian))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0x08, 0, 0, 0, 0x0C}, f.data[:8])
}

func TestWrite_BaseOffsetMismatch(t *testing.T) {
	table, err := Build(100, []string{"foo"})
	require.NoError(t, err)

	f := newMemFile(nil)
	n, err := Write(f, table, 0)
	require.ErrorIs(t, err, errs.ErrConsistency)
	require.Equal(t, int64(0), n)
	require.Empty(t, f.data, "nothing is written on mismatch")
}

func TestWrite_NilTable(t *testing.T) {
	_, err := Write(newMemFile(nil), nil, 0)
	require.ErrorIs(t, err, errs.ErrConsistency)
}

func TestWrite_IOErrors(t *testing.T) {
	table, err := Build(16, []string{"foo", "bar"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		file  *brokenFile
		cause error
	}{
		{"seek fails", &brokenFile{failSeek: true, seekTo: -1}, errDeviceFull},
		{"seek lands elsewhere", &brokenFile{seekTo: 0}, nil},
		{"write fails", &brokenFile{failWrite: true, seekTo: -1}, errDeviceFull},
		{"short write", &brokenFile{shortWrite: true, seekTo: -1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Write(tt.file, table, 16)
			require.ErrorIs(t, err, errs.ErrIO)
			if tt.cause != nil {
				require.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestWriter_Logger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	wr, err := NewWriter(WithLogger(logger))
	require.NoError(t, err)

	table, err := Build(0, []string{"foo", "bar"})
	require.NoError(t, err)

	_, err = wr.Write(newMemFile(nil), table, 0)
	require.NoError(t, err)

	out := logs.String()
	require.Contains(t, out, "name=foo")
	require.Contains(t, out, "offset=12")
	require.Contains(t, out, "hash_collision=false")
}

func TestWriter_LoggerBelowDebugIsSilent(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))

	table, err := Build(0, []string{"foo"})
	require.NoError(t, err)

	_, err = Write(newMemFile(nil), table, 0, WithLogger(logger))
	require.NoError(t, err)
	require.Empty(t, logs.String())
}

func TestNewWriter_InvalidOption(t *testing.T) {
	_, err := NewWriter(WithEndianness(format.Endianness(0)))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestWriter_Reuse(t *testing.T) {
	wr, err := NewWriter()
	require.NoError(t, err)

	for _, names := range [][]string{{"a"}, {"bb", "cc"}, nil} {
		table, err := Build(4, names)
		require.NoError(t, err)

		f := newMemFile(nil)
		n, err := wr.Write(f, table, 4)
		require.NoError(t, err)
		require.Equal(t, int64(table.StructSize()), n)
	}
}

func BenchmarkWrite(b *testing.B) {
	names := make([]string, 256)
	for i := range names {
		names[i] = "Collision_" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	table, err := Build(0x40, names)
	if err != nil {
		b.Fatal(err)
	}
	wr, _ := NewWriter()
	f := newMemFile(make([]byte, 0, 0x40+int(table.StructSize())))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wr.Write(f, table, 0x40); err != nil {
			b.Fatal(err)
		}
	}
}
