package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tapforge/tapforge/pkg/game"
	"github.com/tapforge/tapforge/pkg/game/types"
	"github.com/tapforge/tapforge/pkg/log"
)

func HandleGetState(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.GetState())
	}
}

func HandleTap(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.Tap(r.Context())
		writeJSON(w, engine.GetState())
	}
}

// PurchaseUpgradeRequest is the optional body of a purchase call.
// When the cost is omitted the server computes it from the upgrade's
// current level.
type PurchaseUpgradeRequest struct {
	Cost *types.PurchaseCost `json:"cost,omitempty"`
}

type PurchaseUpgradeResponse struct {
	Applied bool             `json:"applied"`
	State   *types.GameState `json:"state"`
}

func HandlePurchaseUpgrade(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		var req PurchaseUpgradeRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}
		}

		cost := types.PurchaseCost{}
		if req.Cost != nil {
			cost = *req.Cost
		} else {
			computed, ok := engine.UpgradeCost(key)
			if !ok {
				http.Error(w, "Unknown upgrade", http.StatusBadRequest)
				return
			}
			cost = computed
		}

		applied := engine.PurchaseUpgrade(r.Context(), key, cost)
		w.Header().Set("Content-Type", "application/json")
		if !applied {
			if _, ok := engine.UpgradeCost(key); !ok {
				http.Error(w, "Unknown upgrade", http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusPaymentRequired)
		}
		if err := json.NewEncoder(w).Encode(&PurchaseUpgradeResponse{
			Applied: applied,
			State:   engine.GetState(),
		}); err != nil {
			log.Error("failed to encode response: %v", err)
		}
	}
}

type AddReferralRequest struct {
	Code     string `json:"code"`
	Username string `json:"username"`
}

func HandleAddReferral(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddReferralRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Code == "" || req.Username == "" {
			http.Error(w, "Code and username are required", http.StatusBadRequest)
			return
		}

		engine.AddReferral(r.Context(), req.Code, req.Username)
		writeJSON(w, engine.GetState())
	}
}

func HandleGetLeaderboard(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.GetLeaderboard())
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
