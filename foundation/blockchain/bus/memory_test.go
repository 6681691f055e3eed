package bus_test

import (
	"testing"
	"time"

	"github.com/driftchain/node/foundation/blockchain/bus"
	"github.com/driftchain/node/foundation/blockchain/message"
)

func recv(t *testing.T, ch <-chan message.Envelope) message.Envelope {
	t.Helper()

	select {
	case env := <-ch:
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for envelope")
		return message.Envelope{}
	}
}

func assertSilent(t *testing.T, ch <-chan message.Envelope) {
	t.Helper()

	select {
	case env := <-ch:
		t.Fatalf("expected no envelope, got %+v", env)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryFansOutToOtherPeersOnly(t *testing.T) {
	hub := bus.NewMemoryHub()
	defer hub.Shutdown()

	a := bus.NewMemory(hub, "a")
	b := bus.NewMemory(hub, "b")
	c := bus.NewMemory(hub, "c")

	a.Publish(message.Tx("hello"))

	got := recv(t, b.Receive())
	if got.Data != "hello" {
		t.Fatalf("peer b: got %+v", got)
	}

	got = recv(t, c.Receive())
	if got.Data != "hello" {
		t.Fatalf("peer c: got %+v", got)
	}

	assertSilent(t, a.Receive())
}

func TestMemoryShutdownClosesChannel(t *testing.T) {
	hub := bus.NewMemoryHub()
	defer hub.Shutdown()

	a := bus.NewMemory(hub, "a")
	a.Shutdown()

	select {
	case _, ok := <-a.Receive():
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestMemoryHubShutdownClosesAllPeers(t *testing.T) {
	hub := bus.NewMemoryHub()

	a := bus.NewMemory(hub, "a")
	b := bus.NewMemory(hub, "b")

	hub.Shutdown()

	for _, ch := range []<-chan message.Envelope{a.Receive(), b.Receive()} {
		select {
		case _, ok := <-ch:
			if ok {
				t.Fatal("expected closed channel")
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for channel close")
		}
	}
}

func TestMemoryPublishDoesNotBlockWhenReceiverFull(t *testing.T) {
	hub := bus.NewMemoryHub()
	defer hub.Shutdown()

	a := bus.NewMemory(hub, "a")
	_ = bus.NewMemory(hub, "b")

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			a.Publish(message.Tx("flood"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full receiver")
	}
}
