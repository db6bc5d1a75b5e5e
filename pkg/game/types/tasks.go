package types

import "github.com/tapforge/tapforge/pkg/game/constants"

// DailyTask is one entry of the daily task board. Progress may run
// past Target in storage; completion is decided by progress >= target.
type DailyTask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Reward      TaskReward `json:"reward"`
	Progress    float64    `json:"progress"`
	Target      float64    `json:"target"`
	Completed   bool       `json:"completed"`
	Type        TaskType   `json:"type"`
}

// Canonical daily task ids.
const (
	TaskIDTaps100   = "daily_taps_100"
	TaskIDTaps500   = "daily_taps_500"
	TaskIDCoins1000 = "daily_coins_1000"
	TaskIDLogin     = "daily_login"
)

// NewDailyTasks returns the canonical daily task set with zeroed
// progress. The board is regenerated wholesale on day rollover.
func NewDailyTasks() []DailyTask {
	return []DailyTask{
		{
			ID:          TaskIDTaps100,
			Title:       "Tap 100 times",
			Description: "Make 100 taps",
			Reward:      TaskReward{Coins: constants.TaskTaps100CoinReward},
			Target:      constants.TaskTaps100Target,
			Type:        TaskTypeTaps,
		},
		{
			ID:          TaskIDTaps500,
			Title:       "Tap 500 times",
			Description: "Make 500 taps",
			Reward:      TaskReward{Coins: constants.TaskTaps500CoinReward, Gems: constants.TaskTaps500GemReward},
			Target:      constants.TaskTaps500Target,
			Type:        TaskTypeTaps,
		},
		{
			ID:          TaskIDCoins1000,
			Title:       "Earn 1000 coins",
			Description: "Collect 1000 coins in a day",
			Reward:      TaskReward{Gems: constants.TaskCoins1000GemReward},
			Target:      constants.TaskCoins1000Target,
			Type:        TaskTypeCoins,
		},
		{
			ID:          TaskIDLogin,
			Title:       "Daily login",
			Description: "Come back every day",
			Reward:      TaskReward{Coins: constants.TaskLoginCoinReward, Gems: constants.TaskLoginGemReward},
			Target:      constants.TaskLoginTarget,
			Type:        TaskTypeLogin,
		},
	}
}
