package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// ErrNoPublisher is returned when a pipeline is built without a Publisher
var ErrNoPublisher = errors.New("no publisher configured")

// Publisher delivers the bot's replies and private messages
type Publisher interface {
	// Reply posts body as a reply to a comment or inbox message
	Reply(ctx context.Context, thingID, body string) error
	// SendMessage sends a private message to user
	SendMessage(ctx context.Context, user, subject, body string) error
}

// Delivery is one reply or message written by WriterPublisher
type Delivery struct {
	Kind    string    `json:"kind"` // reply or message
	Target  string    `json:"target"`
	Subject string    `json:"subject,omitempty"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// WriterPublisher writes deliveries as JSON lines instead of posting them.
// It backs dry runs and the --replies output of batch runs.
type WriterPublisher struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriterPublisher creates a publisher writing to w
func NewWriterPublisher(w io.Writer) *WriterPublisher {
	return &WriterPublisher{enc: json.NewEncoder(w)}
}

// Reply records a reply to thingID
func (p *WriterPublisher) Reply(ctx context.Context, thingID, body string) error {
	return p.write(ctx, Delivery{Kind: "reply", Target: thingID, Body: body})
}

// SendMessage records a private message to user
func (p *WriterPublisher) SendMessage(ctx context.Context, user, subject, body string) error {
	return p.write(ctx, Delivery{Kind: "message", Target: user, Subject: subject, Body: body})
}

func (p *WriterPublisher) write(ctx context.Context, d Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.SentAt = time.Now().UTC()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.enc.Encode(d); err != nil {
		return fmt.Errorf("write %s: %w", d.Kind, err)
	}
	return nil
}
