package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	killed, over := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, killed)
	d.Subscribe(GameOver, over)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: GameOver, Data: ReasonEnemyLanded})

	if len(killed.got) != 2 {
		t.Errorf("Expected 2 EnemyKilled events, got %d", len(killed.got))
	}
	if len(over.got) != 1 {
		t.Fatalf("Expected 1 GameOver event, got %d", len(over.got))
	}
	if reason, _ := over.got[0].Data.(GameOverReason); reason != ReasonEnemyLanded {
		t.Errorf("Expected reason %q, got %v", ReasonEnemyLanded, over.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(GridSpawned, a)
	d.Subscribe(GridSpawned, b)
	d.Unsubscribe(GridSpawned, a)

	d.Dispatch(Event{Type: GridSpawned})

	if len(a.got) != 0 {
		t.Errorf("Unsubscribed listener received %d events", len(a.got))
	}
	if len(b.got) != 1 {
		t.Errorf("Expected remaining listener to receive 1 event, got %d", len(b.got))
	}
}
