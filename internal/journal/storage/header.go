package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

func encodeHeader(hdr types.JournalHeader) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeHeader reads the journal header from the start of data.
func DecodeHeader(data []byte) (types.JournalHeader, error) {
	var hdr types.JournalHeader
	if len(data) < types.JournalHeaderSize {
		return hdr, fmt.Errorf("journal too short for header: %d bytes", len(data))
	}
	if err := binary.Read(bytes.NewReader(data[:types.JournalHeaderSize]), binary.LittleEndian, &hdr); err != nil {
		return hdr, err
	}
	if hdr.Magic != types.JournalMagic {
		return hdr, fmt.Errorf("bad journal magic %#x", hdr.Magic)
	}
	return hdr, nil
}
