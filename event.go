package chromez

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Phase identifies the kind of a trace_event record. The codes are defined
// by the trace_event format; viewers use them to pair and shape events.
type Phase string

const (
	// PhaseBegin opens a duration slice on the event's tid row.
	PhaseBegin Phase = "B"
	// PhaseEnd closes the most recent open slice on the event's tid row.
	PhaseEnd Phase = "E"
	// PhaseComplete is a self-contained slice carrying its own duration.
	PhaseComplete Phase = "X"
	// PhaseInstant marks a single point in time.
	PhaseInstant Phase = "i"
	// PhaseMetadata carries viewer metadata such as the process name.
	PhaseMetadata Phase = "M"
)

// Arg is one key/value pair of event metadata. Values may be anything
// encoding/json can marshal: strings, numbers, booleans, nil, nested
// maps and slices.
type Arg struct {
	Key   string
	Value interface{}
}

// Args is an ordered list of metadata pairs. It renders as a JSON object
// with keys in list order; duplicate keys are written as-is, in call
// order, without deduplication.
type Args []Arg

// MarshalJSON renders the pairs as a JSON object, preserving order.
func (a Args) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, arg := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(arg.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(arg.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Fields builds an Args list from alternating key/value arguments:
//
//	chromez.Fields("code", 200, "success", true)
//
// Non-string keys are stringified with fmt.Sprint. A trailing key with
// no value gets a nil value.
func Fields(kv ...interface{}) Args {
	if len(kv) == 0 {
		return nil
	}
	args := make(Args, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		var value interface{}
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		args = append(args, Arg{Key: key, Value: value})
	}
	return args
}

// TraceEvent is one trace_event record. Events are ephemeral: constructed,
// rendered, written, and discarded. Field order is stable for testability.
//
//nolint:govet // Field order matches the rendered JSON, not memory layout
type TraceEvent struct {
	Name Key    `json:"name"`
	Ph   Phase  `json:"ph"`
	Ts   uint64 `json:"ts"`
	Pid  int    `json:"pid"`
	Tid  uint64 `json:"tid"`
	Dur  uint64 `json:"dur,omitempty"`
	Args Args   `json:"args,omitempty"`
}
