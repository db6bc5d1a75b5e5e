package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/tapforge/tapforge/pkg/game/types"
)

// zstdMagic is the zstandard frame header. Save blobs written by
// Encode start with it; plain JSON blobs (older saves, hand edits)
// do not, and Decode accepts both.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Encode serializes a game state to a compressed save blob.
func Encode(state *types.GameState) ([]byte, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress game state: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DecodeRaw returns the JSON document contained in a save blob,
// decompressing it when necessary.
func DecodeRaw(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}

	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed game state: %v", err)
	}

	return b, nil
}

// Decode deserializes a save blob into a game state.
func Decode(data []byte) (*types.GameState, error) {
	b, err := DecodeRaw(data)
	if err != nil {
		return nil, err
	}

	state := &types.GameState{}
	if err := json.Unmarshal(b, state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %v", err)
	}

	return state, nil
}
