package notifier

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Request is one notification to be delivered to a user. Delivery is handled
// by an external collaborator; the engine only emits requests.
type Request struct {
	ID      string
	UserID  int64
	Title   string
	Message string
}

// Notifier accepts notification requests fire-and-forget. Implementations
// must never block the caller and their failures must never propagate into
// the transaction that produced the request.
type Notifier interface {
	Notify(userID int64, title, message string)
	Close()
}

// Sink receives queued requests for actual delivery.
type Sink interface {
	Deliver(req Request) error
}

// LogSink writes notification requests to the log. Used in development and
// whenever no delivery channel is configured.
type LogSink struct {
	Logger zerolog.Logger
}

// Deliver logs the request.
func (s *LogSink) Deliver(req Request) error {
	s.Logger.Info().
		Str("notificationId", req.ID).
		Int64("userId", req.UserID).
		Str("title", req.Title).
		Str("message", req.Message).
		Msg("Notification request emitted")
	return nil
}

// AsyncNotifier queues requests on a buffered channel and hands them to the
// sink from a single worker goroutine. When the buffer is full the request is
// dropped with a warning rather than blocking the request path.
type AsyncNotifier struct {
	sink   Sink
	queue  chan Request
	logger zerolog.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

// NewAsyncNotifier creates and starts an AsyncNotifier with the given buffer size.
func NewAsyncNotifier(sink Sink, bufferSize int, logger zerolog.Logger) *AsyncNotifier {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	n := &AsyncNotifier{
		sink:   sink,
		queue:  make(chan Request, bufferSize),
		logger: logger,
	}
	n.wg.Add(1)
	go n.run()
	return n
}

func (n *AsyncNotifier) run() {
	defer n.wg.Done()
	for req := range n.queue {
		if err := n.sink.Deliver(req); err != nil {
			n.logger.Error().Err(err).Str("notificationId", req.ID).Int64("userId", req.UserID).Msg("Notification delivery failed")
		}
	}
}

// Notify enqueues a request. Never blocks.
func (n *AsyncNotifier) Notify(userID int64, title, message string) {
	req := Request{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	select {
	case n.queue <- req:
	default:
		n.logger.Warn().Int64("userId", userID).Str("title", title).Msg("Notification queue full, request dropped")
	}
}

// Close stops accepting requests and waits for the queue to drain.
func (n *AsyncNotifier) Close() {
	n.once.Do(func() {
		close(n.queue)
	})
	n.wg.Wait()
}
