// Package mirror provides the durable slot the event collection is
// persisted to. Every driver stores one opaque payload under one name and
// replaces it wholesale on Save.
package mirror

import "errors"

// DefaultSlot is the slot name used when none is configured.
const DefaultSlot = "timebot-events"

// ErrSlotEmpty is returned by Load when nothing has been saved yet.
var ErrSlotEmpty = errors.New("mirror slot is empty")
