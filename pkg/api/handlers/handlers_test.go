package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapforge/tapforge/pkg/game"
	"github.com/tapforge/tapforge/pkg/game/types"
	"github.com/tapforge/tapforge/pkg/repositories"
)

func newTestRouter(t *testing.T) (*mux.Router, *game.Engine) {
	t.Helper()
	engine := game.NewEngine(context.Background(), game.NewEngineOptions{
		Repository: repositories.NewInMemoryRepository(),
	})

	r := mux.NewRouter()
	r.HandleFunc("/api/state", HandleGetState(engine)).Methods(http.MethodGet)
	r.HandleFunc("/api/tap", HandleTap(engine)).Methods(http.MethodPost)
	r.HandleFunc("/api/upgrades/{key}", HandlePurchaseUpgrade(engine)).Methods(http.MethodPost)
	r.HandleFunc("/api/referrals", HandleAddReferral(engine)).Methods(http.MethodPost)
	r.HandleFunc("/api/leaderboard", HandleGetLeaderboard(engine)).Methods(http.MethodGet)

	return r, engine
}

func TestHandleGetState(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var state types.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, 1, state.Level)
	assert.NotEmpty(t, state.ReferralCode)
}

func TestHandleTap(t *testing.T) {
	r, engine := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/tap", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var state types.GameState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, float64(1), state.Coins)
	assert.Equal(t, int64(1), engine.GetState().TotalClicks)
}

func TestHandlePurchaseUpgrade(t *testing.T) {
	t.Run("insufficient funds", func(t *testing.T) {
		r, engine := newTestRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/upgrades/autoClicker", nil))

		require.Equal(t, http.StatusPaymentRequired, w.Code)

		var resp PurchaseUpgradeResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.False(t, resp.Applied)
		assert.Equal(t, 0, engine.GetState().Upgrades.AutoClicker)
	})

	t.Run("unknown upgrade", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/upgrades/turboTap", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("explicit cost applied", func(t *testing.T) {
		r, engine := newTestRouter(t)
		engine.AddReferral(context.Background(), "SEED", "seed") // fund the wallet

		body, err := json.Marshal(&PurchaseUpgradeRequest{
			Cost: &types.PurchaseCost{Coins: 100},
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/upgrades/autoClicker", bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)

		var resp PurchaseUpgradeResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Applied)
		assert.Equal(t, 1, engine.GetState().Upgrades.AutoClicker)
		assert.Equal(t, float64(4900), engine.GetState().Coins)
	})

	t.Run("invalid body", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/upgrades/autoClicker", bytes.NewReader([]byte("{not json"))))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleAddReferral(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, engine := newTestRouter(t)

		body := []byte(`{"code":"FRIEND1","username":"alice"}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/referrals", bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)
		state := engine.GetState()
		assert.Equal(t, float64(5000), state.Coins)
		assert.Len(t, state.Referrals, 1)
	})

	t.Run("missing fields", func(t *testing.T) {
		r, engine := newTestRouter(t)

		body := []byte(`{"code":"","username":"alice"}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/referrals", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, engine.GetState().Referrals)
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var board []types.LeaderboardEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&board))
	require.Len(t, board, 9)
	assert.Equal(t, 1, board[0].Rank)
}
