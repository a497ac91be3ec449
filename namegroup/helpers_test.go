package namegroup

import (
	"errors"
	"io"
	"math/rand"
)

// memFile is an in-memory io.ReadWriteSeeker that grows on write like a file.
type memFile struct {
	data []byte
	pos  int64
}

func newMemFile(data []byte) *memFile {
	return &memFile{data: data}
}

func (m *memFile) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	copy(m.data[m.pos:], p)
	m.pos = end

	return len(p), nil
}

func (m *memFile) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)

	return n, nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, errors.New("memFile: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("memFile: negative position")
	}
	m.pos = abs

	return abs, nil
}

var errDeviceFull = errors.New("no space left on device")

// brokenFile fails the operation selected by its flags.
type brokenFile struct {
	failSeek   bool
	failWrite  bool
	shortWrite bool
	seekTo     int64 // position reported by Seek when >= 0
}

func (b *brokenFile) Seek(offset int64, _ int) (int64, error) {
	if b.failSeek {
		return 0, errDeviceFull
	}
	if b.seekTo >= 0 {
		return b.seekTo, nil
	}

	return offset, nil
}

func (b *brokenFile) Write(p []byte) (int, error) {
	if b.failWrite {
		return 0, errDeviceFull
	}
	if b.shortWrite {
		return len(p) / 2, nil
	}

	return len(p), nil
}

// randomNames returns n names drawn from a mixed ASCII/UTF-8 alphabet,
// including repeats and the empty name.
func randomNames(rng *rand.Rand, n int) []string {
	parts := []string{"Collision", "_", "Body", "Arm", "脚", "ü", "0", "9", "."}
	names := make([]string, n)
	for i := range names {
		k := rng.Intn(4)
		name := ""
		for j := 0; j < k; j++ {
			name += parts[rng.Intn(len(parts))]
		}
		names[i] = name
	}

	return names
}
