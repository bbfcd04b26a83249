// Package marshaller provides typed encoders used to persist engine records
// and to print command results.
package marshaller

// TypedMarshaller is a generic interface for typed marshalling operations.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}
