package handlers

import (
	"net/http"

	"github.com/tapforge/tapforge/pkg/game"
	"github.com/tapforge/tapforge/pkg/log"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// HandleEvents upgrades the connection to a WebSocket and pushes a
// state snapshot on connect and after every engine mutation. Rapid
// mutations coalesce: the client always receives the latest state,
// not every intermediate one.
func HandleEvents(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Error("Failed to accept WebSocket connection: %v", err)
			return
		}
		defer conn.Close(websocket.StatusInternalError, "closing")

		ctx := r.Context()

		changed := make(chan struct{}, 1)
		unsubscribe := engine.Subscribe(func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		defer unsubscribe()

		if err := wsjson.Write(ctx, conn, engine.GetState()); err != nil {
			log.Debug("Failed to write initial state: %v", err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "server shutting down")
				return
			case <-changed:
				if err := wsjson.Write(ctx, conn, engine.GetState()); err != nil {
					log.Debug("Failed to write state update: %v", err)
					return
				}
			}
		}
	}
}
