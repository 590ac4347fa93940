package lzav

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lzav test")},
		{name: "tiny-15", data: bytes.Repeat([]byte{0x42}, 15)},
		{name: "boundary-16", data: bytes.Repeat([]byte{0x42}, 16)},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "overlap-heavy", data: bytes.Repeat([]byte("ab"), 4000)},
		{name: "incompressible", data: pseudoRandom(5000)},
	}
}

// pseudoRandom returns a deterministic, non-repeating-enough byte sequence
// (an LCG) so tests don't depend on math/rand's global seed.
func pseudoRandom(n int) []byte {
	out := make([]byte, n)
	state := uint32(0x2545F491)
	for i := range out {
		state = state*1664525 + 1013904223
		out[i] = byte(state >> 24)
	}
	return out
}

func roundTrip(t *testing.T, data []byte) []byte {
	t.Helper()

	dst := make([]byte, CompressBound(len(data)))
	n, err := Compress(data, dst, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	cmp := dst[:n]

	out := make([]byte, len(data))
	m, err := Decompress(cmp, out, len(data))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if m != len(data) {
		t.Fatalf("Decompress produced %d bytes, want %d", m, len(data))
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch: got %d bytes, want %d bytes", len(out), len(data))
	}
	return cmp
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			roundTrip(t, in.data)
		})
	}
}

func TestCompress_EmptyAndNilParams(t *testing.T) {
	if _, err := Compress(nil, make([]byte, 16), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := Compress([]byte("x"), nil, nil); err == nil {
		t.Fatal("expected error for nil destination")
	}
	if _, err := Compress([]byte("x"), make([]byte, 1), nil); err == nil {
		t.Fatal("expected error for undersized destination")
	}
}

func TestCompress_ScratchReuse(t *testing.T) {
	data := bytes.Repeat([]byte("scratch-buffer-reuse-check"), 300)
	scratch := make([]byte, ScratchSize(len(data)))

	dst1 := make([]byte, CompressBound(len(data)))
	n1, err := Compress(data, dst1, scratch)
	if err != nil {
		t.Fatalf("first Compress failed: %v", err)
	}

	dst2 := make([]byte, CompressBound(len(data)))
	n2, err := Compress(data, dst2, scratch)
	if err != nil {
		t.Fatalf("second Compress with reused scratch failed: %v", err)
	}

	if !bytes.Equal(dst1[:n1], dst2[:n2]) {
		t.Fatal("reusing scratch changed the compressed output")
	}
}

func TestDecompress_Errors(t *testing.T) {
	data := bytes.Repeat([]byte("round trip me please"), 50)
	dst := make([]byte, CompressBound(len(data)))
	n, err := Compress(data, dst, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	cmp := dst[:n]

	t.Run("truncated source", func(t *testing.T) {
		out := make([]byte, len(data))
		truncated := cmp[:len(cmp)/2]
		if _, err := Decompress(truncated, out, len(data)); err == nil {
			t.Fatal("expected an error decoding a truncated stream")
		}
	})

	t.Run("wrong expected length", func(t *testing.T) {
		out := make([]byte, len(data)+10)
		if _, err := Decompress(cmp, out, len(data)+10); err == nil {
			t.Fatal("expected ErrDstLen for a mismatched expected length")
		}
	})

	t.Run("undersized destination", func(t *testing.T) {
		out := make([]byte, len(data)-1)
		if _, err := Decompress(cmp, out, len(data)); err == nil {
			t.Fatal("expected an error for a destination smaller than expectedDstl")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		bad := append([]byte(nil), cmp...)
		bad[0] = 0x50 | (bad[0] & 0x0F)
		out := make([]byte, len(data))
		if _, err := Decompress(bad, out, len(data)); err == nil {
			t.Fatal("expected ErrUnknownFormat for an unsupported format nibble")
		}
	})
}

func TestDecompressPartial_TruncatedStream(t *testing.T) {
	data := bytes.Repeat([]byte("partial decode should salvage a prefix"), 400)
	dst := make([]byte, CompressBound(len(data)))
	n, err := Compress(data, dst, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	cmp := dst[:n]

	truncated := cmp[:len(cmp)*3/4]
	out := make([]byte, len(data))
	m := DecompressPartial(truncated, out)

	if m <= 0 || m > len(data) {
		t.Fatalf("DecompressPartial returned an out-of-range count: %d", m)
	}
	if !bytes.Equal(out[:m], data[:m]) {
		t.Fatalf("DecompressPartial's prefix does not match the source")
	}
}

func TestCompressBound_MonotonicAndSane(t *testing.T) {
	prev := CompressBound(0)
	for _, n := range []int{0, 1, 15, 16, 100, 1000, 1 << 20} {
		b := CompressBound(n)
		if b < n {
			t.Fatalf("CompressBound(%d) = %d is smaller than the source", n, b)
		}
		if n > 0 && b < prev {
			t.Fatalf("CompressBound not monotonic: bound(%d)=%d < earlier bound %d", n, b, prev)
		}
		prev = b
	}
}

func TestCompressOptions_LoggerIsOptional(t *testing.T) {
	data := bytes.Repeat([]byte("logger path"), 200)
	dst := make([]byte, CompressBound(len(data)))

	if _, err := CompressWithOptions(data, dst, nil, nil); err != nil {
		t.Fatalf("CompressWithOptions with nil opts failed: %v", err)
	}
	if _, err := CompressWithOptions(data, dst, nil, DefaultCompressOptions()); err != nil {
		t.Fatalf("CompressWithOptions with default opts failed: %v", err)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))
	f.Add(pseudoRandom(2048))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		dst := make([]byte, CompressBound(len(data)))
		n, err := Compress(data, dst, nil)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out := make([]byte, len(data))
		m, err := Decompress(dst[:n], out, len(data))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if m != len(data) || !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch for %d-byte input", len(data))
		}
	})
}

func ExampleCompress() {
	src := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")

	dst := make([]byte, CompressBound(len(src)))
	n, _ := Compress(src, dst, nil)

	out := make([]byte, len(src))
	_, _ = Decompress(dst[:n], out, len(src))

	fmt.Println(string(out) == string(src))
	// Output: true
}
