package game

import (
	"context"
	"encoding/json"

	"github.com/tapforge/tapforge/pkg/game/types"
	"github.com/tapforge/tapforge/pkg/log"
	"github.com/tapforge/tapforge/pkg/repositories"
	"github.com/tapforge/tapforge/pkg/snapshot"
)

// loadState reads the save blob and merges it over a fresh default
// state. Any failure along the way falls back to defaults: a missing
// or corrupt save must never keep the game from starting.
func (e *Engine) loadState(ctx context.Context) *types.GameState {
	defaults := types.NewDefaultState(e.now())

	data, err := e.repository.Load(ctx, e.saveKey)
	if err != nil {
		if !repositories.IsNotFound(err) {
			log.Error("Failed to load game state: %v", err)
		}
		return defaults
	}

	raw, err := snapshot.DecodeRaw(data)
	if err != nil {
		log.Error("Failed to decode save blob, starting fresh: %v", err)
		return defaults
	}

	merged, err := mergeState(defaults, raw)
	if err != nil {
		log.Error("Failed to parse save blob, starting fresh: %v", err)
		return defaults
	}

	return merged
}

// stateFields maps the top-level JSON keys of a save blob to the
// fields of GameState they decode into. Keys absent from the blob
// keep their freshly generated defaults; identity-bearing fields are
// called out below so silent regeneration is visible in the logs.
func stateFields(s *types.GameState) map[string]interface{} {
	return map[string]interface{}{
		"coins":           &s.Coins,
		"gems":            &s.Gems,
		"level":           &s.Level,
		"exp":             &s.Exp,
		"expToNextLevel":  &s.ExpToNextLevel,
		"clickPower":      &s.ClickPower,
		"totalClicks":     &s.TotalClicks,
		"upgrades":        &s.Upgrades,
		"dailyTasks":      &s.DailyTasks,
		"completedTasks":  &s.CompletedTasks,
		"lastTaskReset":   &s.LastTaskReset,
		"referrals":       &s.Referrals,
		"referralCode":    &s.ReferralCode,
		"referralRewards": &s.ReferralRewards,
		"purchases":       &s.Purchases,
		"stats":           &s.Stats,
		"leaderboard":     &s.Leaderboard,
	}
}

// identityFields are regenerated with new random content when absent
// from a save blob, which loses state the player can observe.
var identityFields = []string{"referralCode", "leaderboard", "dailyTasks"}

// mergeState decodes each top-level key present in the blob over the
// default state. The merge is shallow by design: a key either fully
// replaces the default value or is absent and the default stands.
func mergeState(defaults *types.GameState, raw []byte) (*types.GameState, error) {
	var blob map[string]json.RawMessage
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, err
	}

	fields := stateFields(defaults)
	for key, target := range fields {
		value, ok := blob[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			return nil, err
		}
	}

	for _, key := range identityFields {
		if _, ok := blob[key]; !ok {
			log.Warn("Save blob is missing %q, regenerated from defaults", key)
		}
	}

	return defaults, nil
}

// persist writes the current state. Write failures are logged, never
// surfaced: the in-memory state stays authoritative and subscribers
// are still notified so the view tracks visible progress.
// Callers must hold the engine lock.
func (e *Engine) persist(ctx context.Context) {
	data, err := snapshot.Encode(e.state)
	if err != nil {
		log.Error("Failed to encode game state: %v", err)
		return
	}

	if err := e.repository.Save(ctx, e.saveKey, data); err != nil {
		log.Error("Failed to save game state: %v", err)
	}
}
