package types

import (
	"time"
)

// GameState is the single aggregate owned by the game engine. One
// instance exists per save; every mutation goes through the engine
// and is persisted afterwards.
type GameState struct {
	Coins          float64 `json:"coins"`
	Gems           float64 `json:"gems"`
	Level          int     `json:"level"`
	Exp            float64 `json:"exp"`
	ExpToNextLevel float64 `json:"expToNextLevel"`
	ClickPower     float64 `json:"clickPower"`
	TotalClicks    int64   `json:"totalClicks"`

	Upgrades Upgrades `json:"upgrades"`

	DailyTasks     []DailyTask `json:"dailyTasks"`
	CompletedTasks []string    `json:"completedTasks"`
	LastTaskReset  time.Time   `json:"lastTaskReset"`

	Referrals       []Referral `json:"referrals"`
	ReferralCode    string     `json:"referralCode"`
	ReferralRewards float64    `json:"referralRewards"`

	Purchases []Purchase `json:"purchases"`

	Stats Stats `json:"stats"`

	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// NewDefaultState synthesizes a fresh save: zeroed economy, level 1,
// a new referral code, the canonical daily tasks and a freshly rolled
// mock leaderboard.
func NewDefaultState(now time.Time) *GameState {
	return &GameState{
		Coins:          0,
		Gems:           0,
		Level:          1,
		Exp:            0,
		ExpToNextLevel: CalculateExpForLevel(1),
		ClickPower:     1,
		TotalClicks:    0,

		Upgrades: Upgrades{},

		DailyTasks:     NewDailyTasks(),
		CompletedTasks: []string{},
		LastTaskReset:  now,

		Referrals:       []Referral{},
		ReferralCode:    NewReferralCode(),
		ReferralRewards: 0,

		Purchases: []Purchase{},

		Stats: Stats{
			DaysPlayed: 1,
			LastLogin:  now,
		},

		Leaderboard: NewMockLeaderboard(),
	}
}

// Copy returns a deep copy of the state. Snapshots handed out by the
// engine must not share any mutable structure with engine internals.
func (s *GameState) Copy() *GameState {
	copied := *s

	copied.DailyTasks = make([]DailyTask, len(s.DailyTasks))
	copy(copied.DailyTasks, s.DailyTasks)

	copied.CompletedTasks = make([]string, len(s.CompletedTasks))
	copy(copied.CompletedTasks, s.CompletedTasks)

	copied.Referrals = make([]Referral, len(s.Referrals))
	copy(copied.Referrals, s.Referrals)

	copied.Purchases = make([]Purchase, len(s.Purchases))
	copy(copied.Purchases, s.Purchases)

	copied.Leaderboard = make([]LeaderboardEntry, len(s.Leaderboard))
	copy(copied.Leaderboard, s.Leaderboard)

	return &copied
}
