package notes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ribgsilva/note-board/business/v1/note"
	"github.com/ribgsilva/note-board/sys"
	"gocloud.dev/pubsub"
)

// Consume applies the note intents received on sub to store until ctx is done.
// At most maxWorkers messages are handled at once.
func Consume(ctx context.Context, sub *pubsub.Subscription, store *note.Store, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			if err := Apply(ctx, store, m.Body); err != nil {
				logger.Error("failed to apply message: ", err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Apply decodes one intent and forwards it to store. The intent is applied and
// saved even when ctx is already cancelled, since the message is acked right after;
// the slot's own operation timeout still bounds the save.
func Apply(ctx context.Context, store *note.Store, body []byte) error {
	ctx = context.WithoutCancel(ctx)

	var e struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return errors.New("failed to parse body: " + err.Error())
	}

	switch e.Type {
	case "create":
		var c note.NewNote
		if err := json.Unmarshal(e.Data, &c); err != nil {
			return errors.New("failed to parse create data: " + err.Error())
		}
		store.Add(ctx, c.Title, c.Content, c.Color)
	case "delete":
		var d note.DeleteNote
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return errors.New("failed to parse delete data: " + err.Error())
		}
		store.Delete(ctx, d.Id)
	default:
		return errors.New("unknown event type: " + e.Type)
	}
	return nil
}
