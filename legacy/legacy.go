// Package legacy defines the message contracts that protocompat adapters implement
// on top of minimal-style generated messages.
package legacy

import "fmt"

// Message is the accessor-era message contract. Implementations forward every
// wire operation to the minimal-style Encode method and Decode function.
type Message interface {
	Reset()
	String() string
	ProtoMessage()
	Size() int
	Marshal() ([]byte, error)
	Unmarshal(b []byte) error
	DefaultInstance() Message
}

// Marshaler is the contract of the gogo-style pipeline.
type Marshaler interface {
	Reset()
	ProtoMessage()
	Size() int
	Marshal() ([]byte, error)
	MarshalTo(b []byte) (int, error)
	Unmarshal(b []byte) error
}

// UnknownEnumValue is the panic message of a strict enum getter that finds a
// stored number with no matching variant.
func UnknownEnumValue(enum string, v int32) string {
	return fmt.Sprintf("unknown %s variant: %d", enum, v)
}
