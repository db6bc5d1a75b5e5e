package types

import (
	"math"
	"math/rand"
	"time"

	"github.com/tapforge/tapforge/pkg/game/constants"
)

// TaskType describes what kind of progress advances a daily task.
type TaskType string

const (
	TaskTypeTaps  TaskType = "taps"
	TaskTypeCoins TaskType = "coins"
	TaskTypeLevel TaskType = "level"
	TaskTypeLogin TaskType = "login"
)

// Upgrade track keys. These double as the JSON field names of the
// Upgrades struct so persisted blobs and API paths agree.
const (
	UpgradeAutoClicker     = "autoClicker"
	UpgradeClickMultiplier = "clickMultiplier"
	UpgradeCoinBoost       = "coinBoost"
	UpgradeGemBoost        = "gemBoost"
	UpgradeMegaTap         = "megaTap"
)

// Upgrades holds the level of each purchasable upgrade track.
type Upgrades struct {
	AutoClicker     int `json:"autoClicker"`
	ClickMultiplier int `json:"clickMultiplier"`
	CoinBoost       int `json:"coinBoost"`
	GemBoost        int `json:"gemBoost"`
	MegaTap         int `json:"megaTap"`
}

// Level returns the level of the named track, or false for an
// unknown key.
func (u *Upgrades) Level(key string) (int, bool) {
	switch key {
	case UpgradeAutoClicker:
		return u.AutoClicker, true
	case UpgradeClickMultiplier:
		return u.ClickMultiplier, true
	case UpgradeCoinBoost:
		return u.CoinBoost, true
	case UpgradeGemBoost:
		return u.GemBoost, true
	case UpgradeMegaTap:
		return u.MegaTap, true
	}
	return 0, false
}

// Increment raises the named track by one level. It returns false
// for an unknown key and leaves the struct untouched.
func (u *Upgrades) Increment(key string) bool {
	switch key {
	case UpgradeAutoClicker:
		u.AutoClicker++
	case UpgradeClickMultiplier:
		u.ClickMultiplier++
	case UpgradeCoinBoost:
		u.CoinBoost++
	case UpgradeGemBoost:
		u.GemBoost++
	case UpgradeMegaTap:
		u.MegaTap++
	default:
		return false
	}
	return true
}

// Stats tracks lifetime counters that only ever grow.
type Stats struct {
	TotalCoinsEarned float64   `json:"totalCoinsEarned"`
	TotalGemsEarned  float64   `json:"totalGemsEarned"`
	TotalTaps        int64     `json:"totalTaps"`
	DaysPlayed       int       `json:"daysPlayed"`
	LastLogin        time.Time `json:"lastLogin"`
}

// TaskReward is the payout granted when a daily task completes.
// Zero values mean the resource is not part of the reward.
type TaskReward struct {
	Coins float64 `json:"coins,omitempty"`
	Gems  float64 `json:"gems,omitempty"`
}

// Referral records a single applied referral.
type Referral struct {
	Code     string    `json:"code"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Reward   float64   `json:"reward"`
}

// PurchaseCost is the price of a purchase in either or both
// currencies. Zero values mean the currency is not charged.
type PurchaseCost struct {
	Coins float64 `json:"coins,omitempty"`
	Gems  float64 `json:"gems,omitempty"`
}

// Purchase is a receipt for a completed upgrade purchase.
type Purchase struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Cost PurchaseCost `json:"cost"`
	Type string       `json:"type"`
	Date time.Time    `json:"date"`
}

const PurchaseTypeUpgrade = "upgrade"

// CalculateExpForLevel returns the experience required to advance
// past the given level: floor(ExpBase * ExpGrowth^(level-1)).
func CalculateExpForLevel(level int) float64 {
	return math.Floor(constants.ExpBase * math.Pow(constants.ExpGrowth, float64(level-1)))
}

const referralCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReferralCode generates a fresh referral code. Codes are not
// guaranteed globally unique; they identify a save, not an account.
func NewReferralCode() string {
	suffix := make([]byte, constants.ReferralCodeSuffixLen)
	for i := range suffix {
		suffix[i] = referralCodeCharset[rand.Intn(len(referralCodeCharset))]
	}
	return constants.ReferralCodePrefix + string(suffix)
}
