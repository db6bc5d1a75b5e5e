package types

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapforge/tapforge/pkg/game/constants"
)

func TestCalculateExpForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{level: 1, want: 100},
		{level: 2, want: 150},
		{level: 3, want: 225},
		{level: 4, want: 337},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateExpForLevel(tt.level), "level %d", tt.level)
	}
}

func TestNewDefaultState(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	state := NewDefaultState(now)

	assert.Equal(t, 1, state.Level)
	assert.Equal(t, float64(100), state.ExpToNextLevel)
	assert.Equal(t, float64(1), state.ClickPower)
	assert.Equal(t, now, state.LastTaskReset)
	assert.Equal(t, now, state.Stats.LastLogin)
	assert.Equal(t, 1, state.Stats.DaysPlayed)
	assert.NotEmpty(t, state.ReferralCode)
	assert.Len(t, state.DailyTasks, 4)
	assert.Len(t, state.Leaderboard, 8)
	assert.NotNil(t, state.CompletedTasks)
	assert.NotNil(t, state.Referrals)
	assert.NotNil(t, state.Purchases)
}

func TestNewDailyTasks(t *testing.T) {
	tasks := NewDailyTasks()
	require.Len(t, tasks, 4)

	byID := make(map[string]DailyTask, len(tasks))
	for _, task := range tasks {
		assert.Equal(t, float64(0), task.Progress)
		assert.False(t, task.Completed)
		byID[task.ID] = task
	}

	assert.Equal(t, TaskTypeTaps, byID[TaskIDTaps100].Type)
	assert.Equal(t, float64(100), byID[TaskIDTaps100].Target)
	assert.Equal(t, float64(500), byID[TaskIDTaps100].Reward.Coins)

	assert.Equal(t, TaskTypeTaps, byID[TaskIDTaps500].Type)
	assert.Equal(t, TaskTypeCoins, byID[TaskIDCoins1000].Type)

	assert.Equal(t, TaskTypeLogin, byID[TaskIDLogin].Type)
	assert.Equal(t, float64(1), byID[TaskIDLogin].Target)
}

func TestNewMockLeaderboard(t *testing.T) {
	board := NewMockLeaderboard()
	require.Len(t, board, 8)

	for i, entry := range board {
		assert.Equal(t, i+2, entry.Rank)
		assert.NotEmpty(t, entry.Username)
		assert.GreaterOrEqual(t, entry.Level, 10)
		assert.GreaterOrEqual(t, entry.Coins, float64(50000))
		if i > 0 {
			assert.LessOrEqual(t, entry.Coins, board[i-1].Coins)
		}
	}
}

func TestNewReferralCode(t *testing.T) {
	code := NewReferralCode()
	assert.True(t, strings.HasPrefix(code, constants.ReferralCodePrefix))
	assert.Len(t, code, len(constants.ReferralCodePrefix)+constants.ReferralCodeSuffixLen)
}

func TestUpgrades_LevelAndIncrement(t *testing.T) {
	u := Upgrades{}

	for _, key := range []string{
		UpgradeAutoClicker, UpgradeClickMultiplier, UpgradeCoinBoost, UpgradeGemBoost, UpgradeMegaTap,
	} {
		level, ok := u.Level(key)
		require.True(t, ok, key)
		assert.Equal(t, 0, level, key)

		require.True(t, u.Increment(key), key)
		level, _ = u.Level(key)
		assert.Equal(t, 1, level, key)
	}

	_, ok := u.Level("turboTap")
	assert.False(t, ok)
	assert.False(t, u.Increment("turboTap"))
}

func TestGameState_Copy(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	state := NewDefaultState(now)
	state.Referrals = append(state.Referrals, Referral{Code: "A", Username: "alice"})
	state.Purchases = append(state.Purchases, Purchase{ID: "p1", Name: UpgradeMegaTap})

	copied := state.Copy()
	copied.Coins = 1000
	copied.DailyTasks[0].Progress = 50
	copied.CompletedTasks = append(copied.CompletedTasks, "x")
	copied.Referrals[0].Username = "mallory"
	copied.Purchases[0].Name = UpgradeAutoClicker
	copied.Leaderboard[0].Rank = 99
	copied.Upgrades.AutoClicker = 7
	copied.Stats.TotalTaps = 123

	assert.Equal(t, float64(0), state.Coins)
	assert.Equal(t, float64(0), state.DailyTasks[0].Progress)
	assert.Empty(t, state.CompletedTasks)
	assert.Equal(t, "alice", state.Referrals[0].Username)
	assert.Equal(t, UpgradeMegaTap, state.Purchases[0].Name)
	assert.Equal(t, 2, state.Leaderboard[0].Rank)
	assert.Equal(t, 0, state.Upgrades.AutoClicker)
	assert.Equal(t, int64(0), state.Stats.TotalTaps)
}
