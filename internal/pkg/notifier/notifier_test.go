package notifier

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type captureSink struct {
	mu   sync.Mutex
	got  []Request
	fail bool
}

func (s *captureSink) Deliver(req Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("delivery down")
	}
	s.got = append(s.got, req)
	return nil
}

func TestAsyncNotifierDeliversAll(t *testing.T) {
	sink := &captureSink{}
	n := NewAsyncNotifier(sink, 16, zerolog.Nop())

	for i := 0; i < 10; i++ {
		n.Notify(int64(i+1), "Enrollment", "You have been enrolled")
	}
	n.Close()

	if len(sink.got) != 10 {
		t.Fatalf("delivered %d requests, want 10", len(sink.got))
	}
	for _, req := range sink.got {
		if req.ID == "" {
			t.Error("request delivered without an id")
		}
	}
}

func TestAsyncNotifierSurvivesSinkFailure(t *testing.T) {
	sink := &captureSink{fail: true}
	n := NewAsyncNotifier(sink, 4, zerolog.Nop())

	n.Notify(1, "Grades posted", "msg")
	// Close must return even though every delivery failed.
	n.Close()
}

func TestAsyncNotifierCloseIsIdempotent(t *testing.T) {
	n := NewAsyncNotifier(&captureSink{}, 4, zerolog.Nop())
	n.Close()
	n.Close()
}
