package server

import (
	"encoding/json"
	"testing"

	"github.com/partyword/clueroom/internal/game"
)

func TestBrokerFansOutSnapshots(t *testing.T) {
	broker := NewBroker()
	room := game.NewRoom("party", 10)

	a := broker.Subscribe("party")
	b := broker.Subscribe("party")
	other := broker.Subscribe("elsewhere")

	broker.Publish(room)

	for name, ch := range map[string]chan []byte{"a": a, "b": b} {
		select {
		case data := <-ch:
			var snap game.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				t.Fatalf("subscriber %s got invalid JSON: %v", name, err)
			}
			if snap.Room != "party" {
				t.Errorf("subscriber %s: room = %q, want %q", name, snap.Room, "party")
			}
		default:
			t.Fatalf("subscriber %s received nothing", name)
		}
	}

	select {
	case <-other:
		t.Fatal("snapshot leaked to another room's subscriber")
	default:
	}
}

func TestBrokerUnsubscribeStopsDelivery(t *testing.T) {
	broker := NewBroker()
	room := game.NewRoom("party", 10)

	ch := broker.Subscribe("party")
	broker.Unsubscribe("party", ch)
	broker.Publish(room)

	select {
	case <-ch:
		t.Fatal("received after unsubscribe")
	default:
	}
}

func TestBrokerDropsWhenSubscriberFull(t *testing.T) {
	broker := NewBroker()
	room := game.NewRoom("party", 10)
	ch := broker.Subscribe("party")

	// Publish past the channel's capacity; the broker must not block.
	for i := 0; i < cap(ch)+5; i++ {
		broker.Publish(room)
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered frames = %d, want full buffer of %d", len(ch), cap(ch))
	}
}
