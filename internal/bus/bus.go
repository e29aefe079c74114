// Package bus carries row change notifications between the API and any
// number of live dashboard views. Subjects are opsdesk.changes.<table>.
package bus

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/nats-io/nats.go"
)

// SubjectPrefix is prepended to table names when publishing change events.
const SubjectPrefix = "opsdesk.changes."

// Change is the payload published for every successful table mutation.
type Change struct {
	Table    string `json:"table"`
	Action   string `json:"action"`
	EntityID string `json:"entity_id,omitempty"`
}

// Bus wraps a NATS connection for publishing and consuming change events.
// A nil Bus is valid and drops all publishes, so the service can run without
// a broker configured.
type Bus struct {
	conn *nats.Conn
}

// Connect dials the NATS endpoint at url. An empty url yields a nil Bus.
func Connect(url string, opts ...nats.Option) (*Bus, error) {
	if url == "" {
		return nil, nil
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	return &Bus{conn: nc}, nil
}

// Close shuts down the underlying NATS connection.
func (b *Bus) Close() {
	if b == nil {
		return
	}
	if err := b.conn.Drain(); err != nil {
		b.conn.Close()
	}
}

// Publish encodes ch as JSON and publishes it under its table subject.
// Errors are returned so callers can log them, never to abort a mutation.
func (b *Bus) Publish(ch Change) error {
	if b == nil {
		return nil
	}
	data, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	return b.conn.Publish(SubjectPrefix+ch.Table, data)
}

type subscription struct {
	sub *nats.Subscription
	ch  chan *nats.Msg
}

func (s *subscription) Close() error {
	err := s.sub.Unsubscribe()
	// No deliveries happen after Unsubscribe returns; closing the channel
	// ends the pump goroutine.
	close(s.ch)
	return err
}

// Subscribe delivers change events for table on the returned channel until
// the closer is closed. table "*" receives events for every table.
func (b *Bus) Subscribe(table string) (<-chan Change, io.Closer, error) {
	if b == nil {
		return nil, nil, errors.New("bus not configured")
	}

	msgs := make(chan *nats.Msg, 64)
	sub, err := b.conn.ChanSubscribe(SubjectPrefix+table, msgs)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan Change, 64)
	go func() {
		defer close(out)
		for msg := range msgs {
			var ch Change
			if err := json.Unmarshal(msg.Data, &ch); err != nil {
				continue
			}
			select {
			case out <- ch:
			default:
				// Slow consumer; drop rather than block the pump.
			}
		}
	}()

	return out, &subscription{sub: sub, ch: msgs}, nil
}
