package gui

import (
	"testing"

	"github.com/appengine-ltd/kingdom-heroes/internal/parser"
)

func TestIntentQueueDrainsInOrder(t *testing.T) {
	q := newIntentQueue(4)
	q.EnqueueIntent(commandIntent("select", "all"))
	q.EnqueueIntent(commandIntent("attack"))

	got := q.Drain()
	if len(got) != 2 || got[0].Verb != "select" || got[1].Verb != "attack" {
		t.Fatalf("expected select then attack, got %+v", got)
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected empty queue after drain")
	}
}

func TestIntentQueueDropsWhenFull(t *testing.T) {
	q := newIntentQueue(2)
	for i := 0; i < 5; i++ {
		q.EnqueueIntent(commandIntent("stop"))
	}
	if got := len(q.Drain()); got != 2 {
		t.Fatalf("expected queue capped at 2, got %d", got)
	}
}

func TestNilIntentQueueIsSafe(t *testing.T) {
	var q *intentQueue
	q.EnqueueIntent(parser.Intent{Verb: "stop"})
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected nil queue to yield nothing")
	}
}
