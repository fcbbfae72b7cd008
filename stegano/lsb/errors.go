package lsb

/*
 * CapacityError: the message together with its 16-bit length prefix
 * cannot fit into the image's bit planes, or the length field cannot
 * represent the message. Raised before any pixel is touched, so a
 * caller can retry with a larger image or a shorter message.
 */
type CapacityError struct {
	Reason string
}

func(e *CapacityError) Error() string {
	return e.Reason
}
