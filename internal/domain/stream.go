package domain

import (
	"fmt"
	"strconv"
)

// Stream is a channel: a named container of topics and messages.
// Streams are owned elsewhere; this service only reads them.
type Stream struct {
	ID          int64
	RealmID     int64
	Name        string
	InviteOnly  bool
	RecipientID int64
	Deactivated bool
}

// IsPublic reports whether non-subscribers of the realm may access the stream.
func (s *Stream) IsPublic() bool {
	return !s.InviteOnly
}

// Subscription links a user to a stream's recipient.
type Subscription struct {
	UserID      int64
	RecipientID int64
	Active      bool
}

// StreamRef identifies a stream either by id or by name, never both.
// The zero value references nothing and is rejected by every lookup.
type StreamRef struct {
	id     int64
	name   string
	byName bool
	set    bool
}

// StreamByID returns a reference to the stream with the given id.
func StreamByID(id int64) StreamRef {
	return StreamRef{id: id, set: true}
}

// StreamByName returns a reference to the stream with the given name.
func StreamByName(name string) StreamRef {
	return StreamRef{name: name, byName: true, set: true}
}

// NewStreamRef builds a StreamRef from the two optional request fields.
// Exactly one must be present.
func NewStreamRef(id *int64, name *string) (StreamRef, error) {
	switch {
	case id != nil && name != nil:
		return StreamRef{}, &StreamReferenceError{Message: "Please choose one: 'stream' or 'stream_id'."}
	case id == nil && name == nil:
		return StreamRef{}, &StreamReferenceError{Message: "Please supply 'stream'."}
	case id != nil:
		return StreamByID(*id), nil
	default:
		return StreamByName(*name), nil
	}
}

// IsZero reports whether the reference names no stream.
func (r StreamRef) IsZero() bool { return !r.set }

// ID returns the stream id and true when the reference is by id.
func (r StreamRef) ID() (int64, bool) {
	return r.id, r.set && !r.byName
}

// Name returns the stream name and true when the reference is by name.
func (r StreamRef) Name() (string, bool) {
	return r.name, r.set && r.byName
}

func (r StreamRef) String() string {
	switch {
	case !r.set:
		return "stream(none)"
	case r.byName:
		return fmt.Sprintf("stream(name=%q)", r.name)
	default:
		return "stream(id=" + strconv.FormatInt(r.id, 10) + ")"
	}
}
