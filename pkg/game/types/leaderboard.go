package types

import (
	"math/rand"
	"sort"
)

// LeaderboardEntry is one row of the mock leaderboard. The board is
// generated once at state creation and persisted as-is; there is no
// live server feeding it.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	Username    string  `json:"username"`
	Level       int     `json:"level"`
	TotalClicks int64   `json:"totalClicks"`
	Coins       float64 `json:"coins"`
}

var mockLeaderboardNames = []string{
	"DarkMaster", "NeonQueen", "PurpleKing", "ShadowLord",
	"VioletVixen", "ChainBreaker", "MidnightRider", "CrimsonDom",
}

// NewMockLeaderboard generates the static rival entries, ranked 2..N
// by descending coins. Rank 1 is reserved for the player and is
// composed at read time.
func NewMockLeaderboard() []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(mockLeaderboardNames))
	for _, name := range mockLeaderboardNames {
		entries = append(entries, LeaderboardEntry{
			Username:    name,
			Level:       rand.Intn(50) + 10,
			TotalClicks: int64(rand.Intn(100000) + 10000),
			Coins:       float64(rand.Intn(1000000) + 50000),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Coins > entries[j].Coins
	})
	for i := range entries {
		entries[i].Rank = i + 2
	}
	return entries
}
