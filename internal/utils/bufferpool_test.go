package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The sizes here mirror what DecodeReader actually asks the pool for: a
// 1-byte record header, a 2-byte extended header or trailing CRC, a
// 3-byte definition field, a 5-byte definition header, and a handful of
// field-value widths up to 8 bytes for u64/f64/u64z.
func TestGetBuffer(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		checkMinCap int
	}{
		{name: "record header", size: 1, checkMinCap: 1},
		{name: "extended header or trailing CRC", size: 2, checkMinCap: 2},
		{name: "definition field", size: 3, checkMinCap: 3},
		{name: "definition header", size: 5, checkMinCap: 5},
		{name: "widest field value", size: 8, checkMinCap: 8},
		{name: "larger than pool default capacity", size: 8192, checkMinCap: 8192},
		{name: "zero-width field read", size: 0, checkMinCap: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := GetBuffer(tt.size)
			require.NotNil(t, buf)
			require.Equal(t, tt.size, len(buf), "buffer length should match requested size")
			require.GreaterOrEqual(t, cap(buf), tt.checkMinCap, "buffer capacity should be at least requested size")

			ReleaseBuffer(buf)
		})
	}
}

func TestReleaseBuffer(t *testing.T) {
	// A definition header buffer, filled as if just read off the wire.
	buf := GetBuffer(5)
	require.NotNil(t, buf)
	require.Equal(t, 5, len(buf))

	for i := range buf {
		buf[i] = byte(i)
	}

	ReleaseBuffer(buf)

	// A record header buffer requested right after - might reuse the same slot.
	buf2 := GetBuffer(1)
	require.NotNil(t, buf2)
	require.Equal(t, 1, len(buf2))

	ReleaseBuffer(buf2)
}

func TestBufferPoolReuse(t *testing.T) {
	buf1 := GetBuffer(2048)
	require.Equal(t, 2048, len(buf1))

	if cap(buf1) >= 2048 {
		buf1[0] = 0xAB
		buf1[2047] = 0xCD
	}

	ReleaseBuffer(buf1)

	buf2 := GetBuffer(2048)
	require.Equal(t, 2048, len(buf2))

	// ReleaseBuffer resets length to 0 before putting back, so the
	// borrowed slice must still come back at the requested size.
	require.GreaterOrEqual(t, cap(buf2), 2048)

	ReleaseBuffer(buf2)
}

// TestBufferPoolConcurrency exercises the pool the way DecodeReader would
// if several documents were being decoded on separate goroutines at once,
// each asking for a mix of record-header- and field-sized buffers.
func TestBufferPoolConcurrency(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	done := make(chan bool, goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			for i := 0; i < iterations; i++ {
				size := 1 + (i % 8)
				buf := GetBuffer(size)
				require.Equal(t, size, len(buf))

				for j := 0; j < len(buf); j++ {
					buf[j] = byte(j)
				}

				ReleaseBuffer(buf)
			}
			done <- true
		}()
	}

	for g := 0; g < goroutines; g++ {
		<-done
	}
}

func BenchmarkGetBuffer(b *testing.B) {
	sizes := []int{1, 2, 3, 5, 8}

	for _, size := range sizes {
		b.Run(string(rune(size)), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf := GetBuffer(size)
				ReleaseBuffer(buf)
			}
		})
	}
}
