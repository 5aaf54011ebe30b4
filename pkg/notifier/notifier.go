package notifier

import (
	"encoding/json"
	"fmt"

	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/types"
)

// Wire keys of the storage record. Any other top-level key round-trips
// through the descriptor's payload, so records written by newer versions
// with extra fields still load.
const (
	recordAttribute = "_attribute"
	recordHandler   = "_handler"
)

// Descriptor binds a watched attribute name to a handler name. It holds no
// reference to any particular object: one descriptor can be stored on many
// watched objects. The handler name is not resolved against any registry
// until an event actually fires.
type Descriptor struct {
	attribute string
	handler   string
	data      types.Context
}

// New creates a Descriptor watching attribute and dispatching to the
// handler registered under handlerName.
func New(attribute, handlerName string) Descriptor {
	return Descriptor{attribute: attribute, handler: handlerName}
}

// NewWithData creates a Descriptor carrying an extra payload. The payload
// is persisted with the record and merged into the handler's context at
// fire time. Values must be JSON-serializable. The map is copied.
func NewWithData(attribute, handlerName string, data types.Context) Descriptor {
	d := Descriptor{attribute: attribute, handler: handlerName}
	if len(data) > 0 {
		d.data = make(types.Context, len(data))
		for k, v := range data {
			d.data[k] = v
		}
	}
	return d
}

// Attribute returns the name of the watched attribute. It may be a logical
// compound name covering several underlying sub-attributes.
func (d Descriptor) Attribute() string {
	return d.attribute
}

// HandlerName returns the registry key dispatched to on change.
func (d Descriptor) HandlerName() string {
	return d.handler
}

// Data returns a copy of the descriptor's payload, or nil when empty.
func (d Descriptor) Data() types.Context {
	if len(d.data) == 0 {
		return nil
	}
	out := make(types.Context, len(d.data))
	for k, v := range d.data {
		out[k] = v
	}
	return out
}

// Key identifies a descriptor for deduplication and subscription
// bookkeeping. The payload is deliberately excluded.
type Key struct {
	Attribute string
	Handler   string
}

// Key returns the descriptor's comparable identity.
func (d Descriptor) Key() Key {
	return Key{Attribute: d.attribute, Handler: d.handler}
}

// Equal reports whether two descriptors watch the same attribute and
// dispatch to the same handler. Payload data does not participate.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.attribute == other.attribute && d.handler == other.handler
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s -> %s", d.attribute, d.handler)
}

// StorageRecord serializes the descriptor to its JSON storage record.
func (d Descriptor) StorageRecord() (string, error) {
	record := make(map[string]interface{}, len(d.data)+2)
	for k, v := range d.data {
		record[k] = v
	}
	record[recordAttribute] = d.attribute
	record[recordHandler] = d.handler

	raw, err := json.Marshal(record)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrMalformedRecord, "descriptor %s is not serializable", d)
	}
	return string(raw), nil
}

// FromStorageRecord deserializes a storage record previously produced by
// StorageRecord. Top-level keys other than the reserved ones become the
// descriptor's payload.
func FromStorageRecord(record string) (Descriptor, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(record), &raw); err != nil {
		return Descriptor{}, errors.Wrap(err, errors.ErrMalformedRecord, "stored record is not valid JSON")
	}

	attribute, ok := raw[recordAttribute].(string)
	if !ok {
		return Descriptor{}, errors.Newf(errors.ErrMalformedRecord, "stored record has no %s field", recordAttribute)
	}
	handler, ok := raw[recordHandler].(string)
	if !ok {
		return Descriptor{}, errors.Newf(errors.ErrMalformedRecord, "stored record has no %s field", recordHandler)
	}

	delete(raw, recordAttribute)
	delete(raw, recordHandler)

	d := Descriptor{attribute: attribute, handler: handler}
	if len(raw) > 0 {
		d.data = types.Context(raw)
	}
	return d, nil
}

// EncodeList serializes descriptors in order to their storage records.
func EncodeList(descriptors []Descriptor) ([]string, error) {
	records := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		record, err := d.StorageRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// DecodeList deserializes a stored record list, preserving order. It fails
// on the first malformed record, identifying its index.
func DecodeList(records []string) ([]Descriptor, error) {
	descriptors := make([]Descriptor, 0, len(records))
	for i, record := range records {
		d, err := FromStorageRecord(record)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrMalformedRecord, "record %d is malformed", i).
				WithDetail("index", i)
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

// Contains reports whether list holds a descriptor equal to d.
func Contains(list []Descriptor, d Descriptor) bool {
	for _, existing := range list {
		if existing.Equal(d) {
			return true
		}
	}
	return false
}
