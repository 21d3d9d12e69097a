package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ribgsilva/note-board/app/messaging/consumers/v1/notes"
	"github.com/ribgsilva/note-board/business/v1/note"
	persistence "github.com/ribgsilva/note-board/persistence/v1/note"
	"github.com/ribgsilva/note-board/persistence/v1/slot"
	"github.com/ribgsilva/note-board/platform/env"
	"github.com/ribgsilva/note-board/platform/logger"
	"github.com/ribgsilva/note-board/sys"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

type NoteTests struct {
	topic *pubsub.Topic
	store *note.Store
}

func TestNote(t *testing.T) {
	log, err := logger.New("Note-Board-Messaging-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// =======================================================================================================
	// Setup configs
	sys.Configs.Storage.SlotKey = env.OrDefault(log, "STORAGE_SLOT_KEY", "notes")
	sys.Configs.Blob.OperationTimeout = env.DurationDefault(log, "BLOB_OPERATION_TIMEOUT", "5s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// file bucket
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	sys.R.Bucket = bucket
	s := slot.NewBucket(bucket, sys.Configs.Blob.OperationTimeout)
	defer func() {
		_ = s.Close()
	}()

	store := note.NewStore(log, persistence.NewAdapter(log, s, sys.Configs.Storage.SlotKey))
	store.Initialize(context.Background())

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	done := make(chan error, 1)
	go func() {
		done <- notes.Consume(withCancel, subscription, store, 1)
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic, store: store}

	created := noteTests.testCreate(t)
	noteTests.testIgnored(t)
	noteTests.testDelete(t, created)

	// the file slot holds what the store holds
	reloaded := note.NewStore(log, persistence.NewAdapter(log, s, sys.Configs.Storage.SlotKey))
	reloaded.Initialize(context.Background())
	if len(reloaded.All()) != len(store.All()) {
		t.Fatalf("Test reload: should have reloaded %d notes from %s: %v", len(store.All()), filepath.Join(dir, sys.Configs.Storage.SlotKey), reloaded.All())
	}

	cancelFunc()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal("listener error: ", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}

func (nt *NoteTests) send(t *testing.T, event note.Event) {
	marshal, err := json.Marshal(event)
	if err != nil {
		t.Fatal("failed to parse event body")
	}

	if err := nt.topic.Send(context.Background(), &pubsub.Message{
		Body: marshal,
	}); err != nil {
		t.Fatal("failed to post message to topic: ", err)
	}
}

// waitFor polls the store until cond holds
func (nt *NoteTests) waitFor(t *testing.T, name string, cond func([]note.Note) bool) []note.Note {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if all := nt.store.All(); cond(all) {
			return all
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("Test %s: condition not met in time: %v", name, nt.store.All())
	return nil
}

func (nt *NoteTests) testCreate(t *testing.T) note.Note {
	nt.send(t, note.Event{
		Type: "create",
		Data: note.NewNote{Title: "Groceries", Content: "Milk, eggs", Color: note.ColorYellow},
	})

	all := nt.waitFor(t, "testCreate", func(all []note.Note) bool { return len(all) == 1 })
	if all[0].Title != "Groceries" {
		t.Fatalf("Test testCreate: should have received \"Groceries\" as title: %v", all[0])
	}
	if all[0].Content != "Milk, eggs" {
		t.Fatalf("Test testCreate: should have received \"Milk, eggs\" as content: %v", all[0])
	}
	return all[0]
}

func (nt *NoteTests) testIgnored(t *testing.T) {
	nt.send(t, note.Event{Type: "rename", Data: map[string]string{"title": "x"}})
	nt.send(t, note.Event{Type: "create", Data: note.NewNote{Title: " ", Content: "blank title"}})
	nt.send(t, note.Event{Type: "create", Data: note.NewNote{Title: "Call Bob", Content: "re: taxes", Color: note.ColorBlue}})

	all := nt.waitFor(t, "testIgnored", func(all []note.Note) bool { return len(all) == 2 })
	if all[1].Title != "Call Bob" {
		t.Fatalf("Test testIgnored: should have kept only valid notes: %v", all)
	}
}

func (nt *NoteTests) testDelete(t *testing.T, n note.Note) {
	nt.send(t, note.Event{Type: "delete", Data: note.DeleteNote{Id: n.Id}})

	all := nt.waitFor(t, "testDelete", func(all []note.Note) bool { return len(all) == 1 })
	if all[0].Id == n.Id {
		t.Fatalf("Test testDelete: should have deleted %d: %v", n.Id, all)
	}
}
