package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBusFanOutByTopic(t *testing.T) {
	bus := NewBus()
	cartCh, cancelCart := bus.Subscribe(TopicCart)
	defer cancelCart()
	allCh, cancelAll := bus.Subscribe()
	defer cancelAll()

	bus.Publish(Event{Topic: TopicUser, Action: "saved"})
	bus.Publish(Event{Topic: TopicCart, Action: "item_added", Key: "1"})

	got := <-cartCh
	if got.Topic != TopicCart || got.Key != "1" || got.At.IsZero() {
		t.Fatalf("unexpected cart event: %+v", got)
	}
	select {
	case extra := <-cartCh:
		t.Fatalf("cart subscriber should not receive %+v", extra)
	default:
	}
	first, second := <-allCh, <-allCh
	if first.Topic != TopicUser || second.Topic != TopicCart {
		t.Fatalf("unexpected order: %v %v", first.Topic, second.Topic)
	}
}

func TestBusDropsWhenSubscriberIsSlow(t *testing.T) {
	bus := NewBusWithBuffer(1)
	ch, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(Event{Topic: TopicProduct})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on slow subscriber")
	}
	if len(ch) != 1 {
		t.Fatalf("expected one buffered event, got %d", len(ch))
	}
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicUser)
	if bus.SubscriberCount() != 1 {
		t.Fatalf("expected one subscriber")
	}
	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel")
	}
	if bus.SubscriberCount() != 0 {
		t.Fatalf("expected no subscribers")
	}
	bus.Publish(Event{Topic: TopicUser})
}

type recordingSink struct {
	mu       sync.Mutex
	received []string
	notify   chan struct{}
}

func (s *recordingSink) PublishEvent(_ context.Context, topic string, payload []byte) error {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	s.mu.Lock()
	s.received = append(s.received, topic+":"+event.Action)
	s.mu.Unlock()
	s.notify <- struct{}{}
	return nil
}

func TestBridgeServiceForwardsEvents(t *testing.T) {
	bus := NewBus()
	sink := &recordingSink{notify: make(chan struct{}, 4)}
	svc := NewBridgeService(bus, sink)
	if svc.Name() != "event_bridge" {
		t.Fatalf("unexpected name: %s", svc.Name())
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Start(ctx) }()

	deadline := time.Now().Add(time.Second)
	for bus.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("bridge did not subscribe")
		}
		time.Sleep(5 * time.Millisecond)
	}
	bus.Publish(Event{Topic: TopicPaymentCard, Action: "default_set"})
	select {
	case <-sink.notify:
	case <-time.After(time.Second):
		t.Fatalf("event not forwarded")
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("start returned error: %v", err)
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := svc.Stop(stopCtx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.received) != 1 || sink.received[0] != "payment_card:default_set" {
		t.Fatalf("unexpected forwarded events: %v", sink.received)
	}
}
