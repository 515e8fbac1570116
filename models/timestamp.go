package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TimestampLayout is the textual form timestamps are persisted in. Fixed width in UTC,
// so lexical order matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Timestamp is a point in time stored and served as a TimestampLayout string.
type Timestamp struct {
	time.Time
}

// Now returns the current time truncated to the stored precision.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC().Truncate(time.Microsecond)}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(value string) (Timestamp, error) {
	parsed, err := time.Parse(TimestampLayout, value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", value, err)
		}
	}
	return Timestamp{Time: parsed.UTC()}, nil
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.String())
}

func (t *Timestamp) UnmarshalBSONValue(valueType bsontype.Type, data []byte) error {
	value, ok := bson.RawValue{Type: valueType, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("timestamp must be a string, got %s", valueType)
	}
	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
