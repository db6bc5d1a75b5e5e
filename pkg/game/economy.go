package game

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/tapforge/tapforge/pkg/game/constants"
	"github.com/tapforge/tapforge/pkg/game/types"
)

// Tap applies the primary intent: earn coins, gain one experience
// point, advance tap and coin tasks, then persist and notify.
func (e *Engine) Tap(ctx context.Context) {
	e.mu.Lock()

	coinsEarned := e.tapCoins()
	granted := e.grantCoins(coinsEarned)
	e.state.TotalClicks++
	e.state.Stats.TotalTaps++

	e.addExp(constants.TapExp)

	for i := range e.state.DailyTasks {
		task := &e.state.DailyTasks[i]
		if task.Completed {
			continue
		}
		switch task.Type {
		case types.TaskTypeTaps:
			task.Progress++
			e.checkTaskCompletion(task)
		case types.TaskTypeCoins:
			task.Progress += granted
			e.checkTaskCompletion(task)
		}
	}

	e.persist(ctx)
	subs := e.subscriberList()
	e.mu.Unlock()
	notify(subs)
}

// PurchaseUpgrade deducts the supplied cost and raises the named
// upgrade track by one level. The cost is computed by the caller
// (see UpgradeCost); the engine only validates that funds suffice.
// It returns false, without mutating anything, when funds are short
// or the key is unknown.
func (e *Engine) PurchaseUpgrade(ctx context.Context, key string, cost types.PurchaseCost) bool {
	e.mu.Lock()

	if _, ok := e.state.Upgrades.Level(key); !ok {
		e.mu.Unlock()
		return false
	}
	if cost.Coins > 0 && e.state.Coins < cost.Coins {
		e.mu.Unlock()
		return false
	}
	if cost.Gems > 0 && e.state.Gems < cost.Gems {
		e.mu.Unlock()
		return false
	}

	e.state.Coins -= cost.Coins
	e.state.Gems -= cost.Gems
	e.state.Upgrades.Increment(key)

	if key == types.UpgradeClickMultiplier {
		e.recalcClickPower()
	}

	e.state.Purchases = append(e.state.Purchases, types.Purchase{
		ID:   uuid.NewString(),
		Name: key,
		Cost: cost,
		Type: types.PurchaseTypeUpgrade,
		Date: e.now(),
	})

	e.persist(ctx)
	subs := e.subscriberList()
	e.mu.Unlock()
	notify(subs)

	return true
}

// AddReferral records a referral and pays out the fixed reward. The
// code is not checked against issued codes; any call succeeds.
func (e *Engine) AddReferral(ctx context.Context, code, username string) {
	e.mu.Lock()

	e.state.Referrals = append(e.state.Referrals, types.Referral{
		Code:     code,
		Username: username,
		Date:     e.now(),
		Reward:   constants.ReferralCoinReward,
	})
	e.state.ReferralRewards += constants.ReferralCoinReward
	e.grantCoins(constants.ReferralCoinReward)
	e.grantGems(constants.ReferralGemReward)

	e.persist(ctx)
	subs := e.subscriberList()
	e.mu.Unlock()
	notify(subs)
}

// UpgradeCost returns the price of the next level of the named
// track: base cost scaled by UpgradeCostGrowth^currentLevel. The
// second return value is false for unknown keys.
func (e *Engine) UpgradeCost(key string) (types.PurchaseCost, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	level, ok := e.state.Upgrades.Level(key)
	if !ok {
		return types.PurchaseCost{}, false
	}

	scale := math.Pow(constants.UpgradeCostGrowth, float64(level))
	switch key {
	case types.UpgradeAutoClicker:
		return types.PurchaseCost{Coins: constants.AutoClickerBaseCost * scale}, true
	case types.UpgradeClickMultiplier:
		return types.PurchaseCost{Coins: constants.ClickMultiplierBaseCost * scale}, true
	case types.UpgradeCoinBoost:
		return types.PurchaseCost{Coins: constants.CoinBoostBaseCost * scale}, true
	case types.UpgradeGemBoost:
		return types.PurchaseCost{Gems: constants.GemBoostBaseGemCost * scale}, true
	case types.UpgradeMegaTap:
		return types.PurchaseCost{Coins: constants.MegaTapBaseCost * scale}, true
	}
	return types.PurchaseCost{}, false
}

// tapCoins is the base coin yield of one tap before boost tracks.
func (e *Engine) tapCoins() float64 {
	multiplier := 1 + float64(e.state.Upgrades.ClickMultiplier)*constants.ClickMultiplierBonus
	return e.state.ClickPower * multiplier
}

// grantCoins credits coins through the single income path: the coin
// boost track scales the amount, and the lifetime counter moves in
// step with the balance. Returns the credited amount.
func (e *Engine) grantCoins(amount float64) float64 {
	granted := amount * (1 + float64(e.state.Upgrades.CoinBoost)*constants.BoostBonusPerLevel)
	e.state.Coins += granted
	e.state.Stats.TotalCoinsEarned += granted
	return granted
}

// grantGems is the gem counterpart of grantCoins.
func (e *Engine) grantGems(amount float64) float64 {
	granted := amount * (1 + float64(e.state.Upgrades.GemBoost)*constants.BoostBonusPerLevel)
	e.state.Gems += granted
	e.state.Stats.TotalGemsEarned += granted
	return granted
}

// addExp accumulates experience and levels up while the threshold is
// crossed. A single grant can span multiple level-ups; the excess
// rolls over each time.
func (e *Engine) addExp(amount float64) {
	e.state.Exp += amount

	for e.state.Exp >= e.state.ExpToNextLevel {
		e.state.Exp -= e.state.ExpToNextLevel
		e.levelUp()
	}
}

func (e *Engine) levelUp() {
	e.state.Level++
	e.state.ExpToNextLevel = types.CalculateExpForLevel(e.state.Level)
	e.recalcClickPower()
	e.grantGems(constants.LevelUpGems)
}

// recalcClickPower derives click power from its two bonus sources:
// one per level gained and one per click multiplier level. Deriving
// instead of incrementing keeps the sources from clobbering each
// other.
func (e *Engine) recalcClickPower() {
	e.state.ClickPower = 1 + float64(e.state.Level-1) + float64(e.state.Upgrades.ClickMultiplier)
}

// checkTaskCompletion transitions a task to completed exactly once.
// Re-checking a completed task is a no-op, so rewards never double.
func (e *Engine) checkTaskCompletion(task *types.DailyTask) {
	if task.Completed || task.Progress < task.Target {
		return
	}

	task.Completed = true
	e.state.CompletedTasks = append(e.state.CompletedTasks, task.ID)

	if task.Reward.Coins > 0 {
		e.grantCoins(task.Reward.Coins)
	}
	if task.Reward.Gems > 0 {
		e.grantGems(task.Reward.Gems)
	}
}
