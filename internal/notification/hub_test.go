package notification

import (
	"context"
	"testing"
	"time"

	"qa-board-sync/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestHub_DeliversOnlyToMatchingUser(t *testing.T) {
	hub := NewHub(&mockLogger{})

	chA, unsubA := hub.Subscribe("alice")
	defer unsubA()
	chB, unsubB := hub.Subscribe("bob")
	defer unsubB()

	hub.Publish(model.Notification{ID: "n1", UserID: "alice", Message: "hi"})

	select {
	case n := <-chA:
		if n.ID != "n1" {
			t.Errorf("expected n1, got %s", n.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("alice never received the notification")
	}

	select {
	case n := <-chB:
		t.Errorf("bob received %s addressed to alice", n.ID)
	default:
	}
}

func TestHub_MultipleConnectionsSameUser(t *testing.T) {
	hub := NewHub(&mockLogger{})

	ch1, unsub1 := hub.Subscribe("alice")
	defer unsub1()
	ch2, unsub2 := hub.Subscribe("alice")
	defer unsub2()

	if got := hub.Subscribers("alice"); got != 2 {
		t.Fatalf("expected 2 subscribers, got %d", got)
	}

	hub.Publish(model.Notification{ID: "n1", UserID: "alice"})

	for i, ch := range []<-chan model.Notification{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("connection %d never received the notification", i+1)
		}
	}
}

func TestHub_UnsubscribeRemovesImmediately(t *testing.T) {
	hub := NewHub(&mockLogger{})

	_, unsub := hub.Subscribe("alice")
	unsub()

	if got := hub.Subscribers("alice"); got != 0 {
		t.Errorf("expected 0 subscribers after unsubscribe, got %d", got)
	}

	// publishing to a user with no subscribers must not panic
	hub.Publish(model.Notification{ID: "n1", UserID: "alice"})

	// unsubscribing twice must be safe
	unsub()
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewHub(&mockLogger{})

	_, unsub := hub.Subscribe("alice")
	defer unsub()

	done := make(chan struct{})
	go func() {
		// overflow the buffer without anyone draining
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Publish(model.Notification{ID: "n", UserID: "alice"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
