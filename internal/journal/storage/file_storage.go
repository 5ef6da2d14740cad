package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// FileStorage appends journal data to a plain file behind a fixed header.
type FileStorage struct {
	file   *os.File
	seqNo  uint64
	offset int64

	sizeFileInBytes int
}

var _ types.Storage = (*FileStorage)(nil)

type FileStorageOpt struct {
	// SizeFileInBytes caps the file size. Zero means unlimited.
	SizeFileInBytes int
}

func NewFileStorage(path string, seqNo uint64, opts ...FileStorageOpt) (*FileStorage, error) {
	s := &FileStorage{seqNo: seqNo}
	for _, val := range opts {
		if val.SizeFileInBytes > 0 {
			s.sizeFileInBytes = val.SizeFileInBytes
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	s.file = f

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if info.Size() == 0 {
		s.offset = types.JournalHeaderSize
		if err := s.writeHeader(types.JournalStatusOpen); err != nil {
			f.Close()
			return nil, err
		}
		return s, nil
	}

	// Existing file: keep its sequence number and append after its data.
	buf := make([]byte, types.JournalHeaderSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read journal header: %w", err)
	}
	hdr, err := DecodeHeader(buf)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.seqNo = hdr.SeqNo
	s.offset = info.Size()
	if err := s.writeHeader(types.JournalStatusOpen); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

func (s *FileStorage) Write(data []byte) error {
	n, err := s.file.WriteAt(data, s.offset)
	s.offset += int64(n)
	return err
}

func (s *FileStorage) CanWrite(size int) bool {
	if s.sizeFileInBytes <= 0 {
		return true
	}
	return s.offset+int64(size) <= int64(s.sizeFileInBytes)
}

// Size returns the number of data bytes written after the header.
func (s *FileStorage) Size() (int64, error) {
	return s.offset - types.JournalHeaderSize, nil
}

func (s *FileStorage) Flush() error {
	return s.file.Sync()
}

// FinalizeAndClose marks the header closed with the final data length.
func (s *FileStorage) FinalizeAndClose() error {
	if s.file == nil {
		return nil
	}
	if err := s.writeHeader(types.JournalStatusClosed); err != nil {
		s.file.Close()
		return err
	}
	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return err
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (s *FileStorage) Close() error {
	return s.FinalizeAndClose()
}

func (s *FileStorage) writeHeader(status types.JournalStatus) error {
	data, err := encodeHeader(types.JournalHeader{
		Magic:      types.JournalMagic,
		Version:    types.JournalVersion1,
		Status:     status,
		SeqNo:      s.seqNo,
		DataLength: uint64(s.offset - types.JournalHeaderSize),
	})
	if err != nil {
		return err
	}
	_, err = s.file.WriteAt(data, 0)
	return err
}
