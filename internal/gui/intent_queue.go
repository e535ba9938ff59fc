package gui

import "github.com/appengine-ltd/kingdom-heroes/internal/parser"

// CommandSink accepts parsed player intents for the next frame.
type CommandSink interface {
	EnqueueIntent(parser.Intent)
}

type intentQueue struct {
	ch chan parser.Intent
}

func newIntentQueue(size int) *intentQueue {
	if size < 1 {
		size = 16
	}
	return &intentQueue{ch: make(chan parser.Intent, size)}
}

func (q *intentQueue) EnqueueIntent(intent parser.Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		// Saturated: a frame's worth of clicks is dropped.
	}
}

func (q *intentQueue) Dequeue() (parser.Intent, bool) {
	if q == nil {
		return parser.Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return parser.Intent{}, false
	}
}

// Drain empties the queue in arrival order.
func (q *intentQueue) Drain() []parser.Intent {
	var out []parser.Intent
	for {
		intent, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, intent)
	}
}
