package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapforge/tapforge/pkg/game/types"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	state := types.NewDefaultState(now)
	state.Coins = 123.5
	state.Level = 7
	state.Upgrades.AutoClicker = 3

	data, err := Encode(state)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, state.Coins, decoded.Coins)
	assert.Equal(t, state.Level, decoded.Level)
	assert.Equal(t, state.Upgrades, decoded.Upgrades)
	assert.Equal(t, state.ReferralCode, decoded.ReferralCode)
	assert.Equal(t, state.DailyTasks, decoded.DailyTasks)
	assert.Equal(t, state.Leaderboard, decoded.Leaderboard)
}

func TestEncodeCompresses(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	state := types.NewDefaultState(now)

	data, err := Encode(state)
	require.NoError(t, err)

	// The blob is a zstd frame, not raw JSON.
	assert.Equal(t, zstdMagic, data[:4])
}

func TestDecodeAcceptsPlainJSON(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	state := types.NewDefaultState(now)
	raw, err := json.Marshal(state)
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, state.ReferralCode, decoded.ReferralCode)
}

func TestDecodeRaw_PlainBytesPassThrough(t *testing.T) {
	raw := []byte(`{"coins":1}`)
	out, err := DecodeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}
