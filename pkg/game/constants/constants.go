package constants

import "time"

// Experience curve.
const (
	ExpBase   = 100
	ExpGrowth = 1.5
	TapExp    = 1
)

// Level-up rewards.
const (
	LevelUpGems = 10
)

// Tap economy.
const (
	ClickMultiplierBonus = 0.5
	BoostBonusPerLevel   = 0.1
)

// Referral rewards.
const (
	ReferralCoinReward = 5000
	ReferralGemReward  = 50
)

// Idle income.
const (
	AutoClickerCoinsPerLevel = 0.5
	IdleIncomeInterval       = 1 * time.Second
)

// Upgrade cost scaling. Costs grow exponentially with the
// upgrade's current level: base * UpgradeCostGrowth^level.
const (
	UpgradeCostGrowth = 1.5
)

// Base costs for the upgrade tracks, consumed by callers that
// compute purchase costs (the engine itself trusts the cost it
// is handed).
const (
	AutoClickerBaseCost     = 100
	ClickMultiplierBaseCost = 250
	CoinBoostBaseCost       = 500
	GemBoostBaseGemCost     = 25
	MegaTapBaseCost         = 1000
)

// Daily task targets and rewards.
const (
	TaskTaps100Target     = 100
	TaskTaps100CoinReward = 500

	TaskTaps500Target     = 500
	TaskTaps500CoinReward = 2000
	TaskTaps500GemReward  = 5

	TaskCoins1000Target    = 1000
	TaskCoins1000GemReward = 10

	TaskLoginTarget     = 1
	TaskLoginCoinReward = 1000
	TaskLoginGemReward  = 5
)

// Referral codes are a fixed prefix plus a short random suffix.
const (
	ReferralCodePrefix    = "TAP"
	ReferralCodeSuffixLen = 6
)

// LeaderboardSelfName is the username shown for the player's own
// rank-1 entry on the composed leaderboard.
const LeaderboardSelfName = "YOU"
