package api

import (
	"errors"

	"github.com/google/uuid"
	"github.com/learntoride/ltr/internal/api/tricks"
	"github.com/learntoride/ltr/internal/http/websocket"
	"github.com/learntoride/ltr/internal/trick"
)

const TitleTrickUpdate = "TRICK_UPDATE"

type (
	// TrickUpdate is pushed to every connected gallery client whenever a
	// trick is created, edited or deleted. A nil Trick indicates deletion.
	TrickUpdate struct {
		TrickID uuid.UUID   `json:"trick_id"`
		Trick   *tricks.Dto `json:"trick"`
	}

	broadcaster struct {
		socketHub  *websocket.SocketHub
		trickStore tricks.Store
	}
)

func newBroadcaster(socketHub *websocket.SocketHub, trickStore tricks.Store) *broadcaster {
	return &broadcaster{socketHub, trickStore}
}

func (hub *broadcaster) BroadcastTrickUpdate(trickId uuid.UUID) error {
	update := TrickUpdate{TrickID: trickId}

	model, err := hub.trickStore.GetTrick(trickId)
	if err != nil && !errors.Is(err, trick.ErrTrickNotFound) {
		return err
	}
	if model != nil {
		dto := tricks.NewDto(model)
		update.Trick = &dto
	}

	hub.broadcast(TitleTrickUpdate, update)
	return nil
}

func (hub *broadcaster) broadcast(title string, update any) {
	hub.socketHub.Send(&websocket.SocketMessage{
		Title: title,
		Body:  map[string]interface{}{"arguments": update},
		Type:  websocket.Update,
	})
}
