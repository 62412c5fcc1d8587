package auth

import (
	"fmt"

	"gaming-hub/internal/event"
)

type Audit interface {
	Log(userID, action, metadata string)
}

func RegisterConsumers(bus *event.Bus, audit Audit) {

	bus.Subscribe(event.EventUserRegistered, func(payload interface{}) {
		u := payload.(*User)

		audit.Log(u.ID, "user.registered",
			fmt.Sprintf(`{"username":%q}`, u.Username))
	})
}
