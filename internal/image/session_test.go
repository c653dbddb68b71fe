package image

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempImage(t *testing.T, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.img")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestOpenReadOnly(t *testing.T) {
	data := make([]byte, 4096)
	path := writeTempImage(t, data)

	s, err := Open(path, ReadOnly)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if s.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", s.Size(), len(data))
	}

	if err := s.WriteAt([]byte{0x01}, 0); err == nil {
		t.Errorf("WriteAt on read-only session succeeded, want error")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	data := make([]byte, 1024)
	path := writeTempImage(t, data)

	s, err := Open(path, ReadWrite)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.WriteAt([]byte{0xE5}, 32); err != nil {
		t.Fatalf("WriteAt: %v", err)
	}

	buf := make([]byte, 1)
	if err := s.ReadAt(buf, 32); err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if buf[0] != 0xE5 {
		t.Errorf("ReadAt(32) = %#x, want 0xE5", buf[0])
	}
}

func TestReadAtShortReadFails(t *testing.T) {
	data := make([]byte, 10)
	path := writeTempImage(t, data)

	s, err := Open(path, ReadOnly)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	buf := make([]byte, 20)
	if err := s.ReadAt(buf, 0); err == nil {
		t.Errorf("ReadAt past EOF succeeded, want error")
	}
}
