package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/chazu/strata/pkg/kernel"
)

// Snapshot layout, little endian:
//
//	magic    [4]byte "STRM"
//	version  uint8
//	vertices uint32
//	indices  uint32
//	checksum uint64  xxhash64 of the uncompressed payload
//	size     uint32  compressed payload length
//	payload  zstd(positions, colors, normals as float32; indices as uint32)
const (
	snapshotMagic   = "STRM"
	SnapshotVersion = 1
	maxPayload      = 1 << 30
)

var (
	// ErrFormat reports a stream that is not a readable snapshot.
	ErrFormat = errors.New("export: not a snapshot")
	// ErrChecksum reports a payload that does not match its checksum.
	ErrChecksum = errors.New("export: snapshot checksum mismatch")
)

type snapshotHeader struct {
	Vertices uint32
	Indices  uint32
	Checksum uint64
	Size     uint32
}

// WriteSnapshot writes m to w in snapshot form.
func WriteSnapshot(w io.Writer, m *kernel.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	var payload bytes.Buffer
	for _, buf := range [][]float32{m.Vertices, m.Colors, m.Normals} {
		_ = binary.Write(&payload, binary.LittleEndian, buf)
	}
	_ = binary.Write(&payload, binary.LittleEndian, m.Indices)

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("export: zstd: %w", err)
	}
	compressed := enc.EncodeAll(payload.Bytes(), nil)
	_ = enc.Close()

	hdr := snapshotHeader{
		Vertices: uint32(m.VertexCount()),
		Indices:  uint32(len(m.Indices)),
		Checksum: xxhash.Sum64(payload.Bytes()),
		Size:     uint32(len(compressed)),
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(snapshotMagic)
	bw.WriteByte(SnapshotVersion)
	_ = binary.Write(bw, binary.LittleEndian, hdr)
	bw.Write(compressed)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*kernel.Mesh, error) {
	var head [5]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrFormat)
	}
	if string(head[:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, head[:4])
	}
	if head[4] != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, head[4])
	}
	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrFormat)
	}

	if hdr.Size > maxPayload {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrFormat, hdr.Size)
	}
	compressed := make([]byte, hdr.Size)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("%w: truncated payload", ErrFormat)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("export: zstd: %w", err)
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChecksum, err)
	}
	if xxhash.Sum64(payload) != hdr.Checksum {
		return nil, ErrChecksum
	}

	floats := int(hdr.Vertices) * 3
	if want := 3*floats*4 + int(hdr.Indices)*4; len(payload) != want {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrFormat, len(payload), want)
	}

	m := &kernel.Mesh{
		Vertices: make([]float32, floats),
		Colors:   make([]float32, floats),
		Normals:  make([]float32, floats),
		Indices:  make([]uint32, hdr.Indices),
	}
	pr := bytes.NewReader(payload)
	for _, buf := range [][]float32{m.Vertices, m.Colors, m.Normals} {
		_ = binary.Read(pr, binary.LittleEndian, buf)
	}
	_ = binary.Read(pr, binary.LittleEndian, m.Indices)

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return m, nil
}

// SaveSnapshot writes m to a snapshot file at path.
func SaveSnapshot(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WriteSnapshot(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSnapshot reads a snapshot file.
func LoadSnapshot(path string) (*kernel.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(bufio.NewReader(f))
}
