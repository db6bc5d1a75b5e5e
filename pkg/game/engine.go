package game

import (
	"context"
	"sync"
	"time"

	"github.com/tapforge/tapforge/pkg/game/constants"
	"github.com/tapforge/tapforge/pkg/game/types"
	"github.com/tapforge/tapforge/pkg/log"
	"github.com/tapforge/tapforge/pkg/repositories"
)

// Engine owns the game state. All mutation goes through its methods;
// every successful mutation is persisted and then announced to
// subscribers. Reads hand out deep copies only.
type Engine struct {
	repository   repositories.Repository
	saveKey      string
	idleInterval time.Duration
	now          func() time.Time

	mu          sync.Mutex
	state       *types.GameState
	subscribers map[uint64]func()
	nextSubID   uint64
}

type NewEngineOptions struct {
	Repository   repositories.Repository
	SaveKey      string
	IdleInterval time.Duration
	// Now overrides the engine clock. Tests use it to cross day
	// boundaries; production leaves it nil.
	Now func() time.Time
}

// NewEngine loads the persisted state (or synthesizes defaults),
// applies the daily task reset and login tracking, and returns an
// engine ready for Start.
func NewEngine(ctx context.Context, opts NewEngineOptions) *Engine {
	e := &Engine{
		repository:   opts.Repository,
		saveKey:      opts.SaveKey,
		idleInterval: opts.IdleInterval,
		now:          opts.Now,
		subscribers:  make(map[uint64]func()),
	}
	if e.saveKey == "" {
		e.saveKey = "default"
	}
	if e.idleInterval <= 0 {
		e.idleInterval = constants.IdleIncomeInterval
	}
	if e.now == nil {
		e.now = time.Now
	}

	e.state = e.loadState(ctx)
	e.checkDailyReset(ctx)
	e.updateLoginStats(ctx)

	return e
}

// Start runs the idle-income loop until the context is cancelled.
func (e *Engine) Start(ctx context.Context) {
	ticker := time.NewTicker(e.idleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.idleIncome(ctx)
		}
	}
}

// GetState returns a deep copy of the current state.
func (e *Engine) GetState() *types.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

// Subscribe registers a callback invoked after every persisted
// mutation. The returned function removes the subscription and is
// safe to call more than once.
func (e *Engine) Subscribe(fn func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subscribers, id)
	}
}

// GetLeaderboard composes the leaderboard view: the player is always
// rank 1, followed by the stored rival entries with their original
// ranks. No re-sorting happens.
func (e *Engine) GetLeaderboard() []types.LeaderboardEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	board := make([]types.LeaderboardEntry, 0, len(e.state.Leaderboard)+1)
	board = append(board, types.LeaderboardEntry{
		Rank:        1,
		Username:    constants.LeaderboardSelfName,
		Level:       e.state.Level,
		TotalClicks: e.state.TotalClicks,
		Coins:       e.state.Coins,
	})
	board = append(board, e.state.Leaderboard...)

	return board
}

// checkDailyReset regenerates the daily task board when the calendar
// day or month has changed since the last reset. This is a rollover
// check, not a 24-hour timer, and runs once at construction.
func (e *Engine) checkDailyReset(ctx context.Context) {
	e.mu.Lock()
	now := e.now()
	lastReset := e.state.LastTaskReset

	if now.Day() == lastReset.Day() && now.Month() == lastReset.Month() {
		e.mu.Unlock()
		return
	}

	log.Info("Daily task reset: last reset was %s", lastReset.Format(time.RFC3339))
	e.state.DailyTasks = types.NewDailyTasks()
	e.state.CompletedTasks = []string{}
	e.state.LastTaskReset = now

	e.persist(ctx)
	subs := e.subscriberList()
	e.mu.Unlock()
	notify(subs)
}

// updateLoginStats advances the day counter on the first session of
// a calendar day and auto-completes the login task. Runs once at
// construction.
func (e *Engine) updateLoginStats(ctx context.Context) {
	e.mu.Lock()
	now := e.now()
	lastLogin := e.state.Stats.LastLogin

	if now.Day() == lastLogin.Day() && now.Month() == lastLogin.Month() {
		e.mu.Unlock()
		return
	}

	e.state.Stats.DaysPlayed++
	e.state.Stats.LastLogin = now

	for i := range e.state.DailyTasks {
		task := &e.state.DailyTasks[i]
		if task.Type == types.TaskTypeLogin && !task.Completed {
			task.Progress = task.Target
			e.checkTaskCompletion(task)
		}
	}

	e.persist(ctx)
	subs := e.subscriberList()
	e.mu.Unlock()
	notify(subs)
}

// idleIncome is one tick of the auto clicker. A tick with no auto
// clicker levels is a no-op: nothing is persisted and nobody is
// notified.
func (e *Engine) idleIncome(ctx context.Context) {
	e.mu.Lock()
	if e.state.Upgrades.AutoClicker <= 0 {
		e.mu.Unlock()
		return
	}

	e.grantCoins(float64(e.state.Upgrades.AutoClicker) * constants.AutoClickerCoinsPerLevel)

	e.persist(ctx)
	subs := e.subscriberList()
	e.mu.Unlock()
	notify(subs)
}

// subscriberList snapshots the subscriber set. Callers must hold the
// engine lock; the callbacks are invoked after it is released so a
// subscriber may call back into the engine.
func (e *Engine) subscriberList() []func() {
	subs := make([]func(), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
