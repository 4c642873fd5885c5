// Package store holds the in-memory message collection and its selection
// state. The collection is immutable after load except for the per-message
// selection flag, which is mutated only through the operations in
// selection.go.
package store

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// ErrInvalidID is returned when an operation references a message id outside
// the collection. Callers drive ids from the collection itself, so hitting
// this indicates a caller bug rather than a user mistake.
var ErrInvalidID = errors.New("invalid message id")

// Unit is one raw message unit as produced by a loader.
type Unit struct {
	Content     string
	SourceLabel string
}

// UnitSource supplies message units one at a time. Next returns io.EOF after
// the final unit.
type UnitSource interface {
	Next() (Unit, error)
}

// Message is a single curated unit. ID is the message's position in the
// collection, assigned densely from 0 at load time and never reassigned.
type Message struct {
	ID          int
	Content     string
	SourceLabel string
	Selected    bool
}

// Collection is the ordered message collection. Load order is display order.
type Collection struct {
	messages []Message
}

// Load drains src and builds a collection. Every message starts selected.
// Any unit error aborts the whole load; a partially loaded corpus would
// silently produce incomplete exports.
func Load(src UnitSource) (*Collection, error) {
	c := &Collection{}
	for {
		u, err := src.Next()
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
		c.messages = append(c.messages, Message{
			ID:          len(c.messages),
			Content:     u.Content,
			SourceLabel: u.SourceLabel,
			Selected:    true,
		})
	}
}

// Len returns the number of messages in the collection.
func (c *Collection) Len() int {
	return len(c.messages)
}

// Get returns the message with the given id.
func (c *Collection) Get(id int) (Message, error) {
	if id < 0 || id >= len(c.messages) {
		return Message{}, fmt.Errorf("get message %d of %d: %w", id, len(c.messages), ErrInvalidID)
	}
	return c.messages[id], nil
}

// All iterates messages in id order. The sequence is restartable and reads
// the live selection flag on each pass.
func (c *Collection) All() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for i := range c.messages {
			if !yield(c.messages[i]) {
				return
			}
		}
	}
}

// CountSelected returns the number of currently selected messages. It is
// computed from the live flags so it can never go stale.
func (c *Collection) CountSelected() int {
	n := 0
	for i := range c.messages {
		if c.messages[i].Selected {
			n++
		}
	}
	return n
}

// SelectedIDs returns the selection snapshot: ids of all selected messages
// in ascending order.
func (c *Collection) SelectedIDs() []int {
	var ids []int
	for i := range c.messages {
		if c.messages[i].Selected {
			ids = append(ids, i)
		}
	}
	return ids
}
