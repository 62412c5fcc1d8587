package games

import (
	"fmt"

	"gaming-hub/internal/event"
)

type Audit interface {
	Log(userID, action, metadata string)
}

type Broadcaster interface {
	BroadcastJSON(v interface{})
}

func RegisterConsumers(bus *event.Bus, audit Audit, ws Broadcaster) {

	bus.Subscribe(event.EventScoreSubmitted, func(payload interface{}) {
		rec := payload.(*ScoreRecord)

		audit.Log(rec.UserID, "score.submitted",
			fmt.Sprintf(`{"gameId":%q,"score":%d}`, rec.GameID, rec.Score))

		ws.BroadcastJSON(rec)
	})

	bus.Subscribe(event.EventScoreDeleted, func(payload interface{}) {
		rec := payload.(*ScoreRecord)

		audit.Log(rec.UserID, "score.deleted",
			fmt.Sprintf(`{"scoreId":%q}`, rec.ID))
	})
}
