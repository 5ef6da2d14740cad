package storage

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

const ( // Constants for mmap file operations
	defaultMmapFileSize int64 = 1024 * 1024 // 1 MB
)

// FileMMapStorage writes journal data into a fixed-size memory mapped file.
type FileMMapStorage struct {
	file   *os.File
	mmap   mmap.MMap
	path   string
	seqNo  uint64
	offset int64

	sizeMapInBytes int64
}

var _ types.Storage = (*FileMMapStorage)(nil)

type FileMMapStorageOps struct {
	MMapFileSizeInBytes int64
}

func NewFileMMapStorage(path string, seqNo uint64, opts ...FileMMapStorageOps) (*FileMMapStorage, error) {
	sizeMapInBytes := defaultMmapFileSize
	for _, val := range opts {
		if val.MMapFileSizeInBytes > 0 {
			sizeMapInBytes = val.MMapFileSizeInBytes
		}
	}
	if sizeMapInBytes <= types.JournalHeaderSize {
		return nil, fmt.Errorf("mmap size %d too small for journal header", sizeMapInBytes)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	currentSize := info.Size()
	isNewFile := currentSize == 0

	if isNewFile {
		if err := f.Truncate(sizeMapInBytes); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to truncate file: %w", err)
		}
	} else {
		// If the file exists, use its size for the mapping
		sizeMapInBytes = currentSize
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	s := &FileMMapStorage{
		file:           f,
		mmap:           m,
		path:           path,
		seqNo:          seqNo,
		sizeMapInBytes: sizeMapInBytes,
	}

	if isNewFile {
		s.offset = types.JournalHeaderSize
	} else {
		// Existing file, read header to restore offset
		hdr, err := DecodeHeader(m)
		if err != nil {
			s.unmapAndClose()
			return nil, fmt.Errorf("failed to read journal header from existing file: %w", err)
		}
		s.seqNo = hdr.SeqNo
		s.offset = int64(types.JournalHeaderSize + hdr.DataLength)
	}
	if err := s.writeHeader(types.JournalStatusOpen); err != nil {
		s.unmapAndClose()
		return nil, err
	}

	return s, nil
}

func (s *FileMMapStorage) Write(data []byte) error {
	if !s.CanWrite(len(data)) {
		return types.ErrJournalFull
	}
	copy(s.mmap[s.offset:], data)
	s.offset += int64(len(data))
	// Keep the data length current so a crash before close can still be parsed.
	return s.writeHeader(types.JournalStatusOpen)
}

func (s *FileMMapStorage) CanWrite(size int) bool {
	// For mmap, the capacity is the total length of the map.
	return s.offset+int64(size) <= int64(len(s.mmap))
}

// Size returns the number of data bytes written after the header.
func (s *FileMMapStorage) Size() (int64, error) {
	return s.offset - types.JournalHeaderSize, nil
}

func (s *FileMMapStorage) Flush() error {
	return s.mmap.Flush()
}

func (s *FileMMapStorage) FinalizeAndClose() error {
	if s.mmap == nil {
		return nil
	}

	if err := s.writeHeader(types.JournalStatusClosed); err != nil {
		return err
	}
	if err := s.mmap.Flush(); err != nil {
		return err
	}
	return s.unmapAndClose()
}

func (s *FileMMapStorage) Close() error {
	return s.FinalizeAndClose()
}

func (s *FileMMapStorage) writeHeader(status types.JournalStatus) error {
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
	copy(s.mmap, data)
	return nil
}

func (s *FileMMapStorage) unmapAndClose() error {
	err := s.mmap.Unmap()
	s.mmap = nil
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}
