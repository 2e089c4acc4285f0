package serializer

// SerializationError reports an encoder failure, such as a NaN or infinite
// number that JSON cannot represent.
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *SerializationError) Unwrap() error { return e.Err }
