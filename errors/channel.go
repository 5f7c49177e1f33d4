package errors

// Channel stores the last error message of one game instance.
//
// The zero value is an empty channel. A Channel belongs to exactly one
// instance and is accessed under the instance's serialization guarantee, so
// it needs no locking of its own.
type Channel struct {
	msg    string
	stored bool
}

// Set overwrites the channel with the message of err.
//
// The bridge calls this on every failing operation and never on success, so
// a stored message survives until the next failure. Terminator bytes are
// stripped here as the single choke point before storage.
func (c *Channel) Set(err error) {
	if err == nil {
		return
	}
	if e, ok := err.(*Error); ok {
		// A failure without a message overwrites to the absent marker.
		c.msg = stripTerminators(e.Detail)
	} else {
		c.msg = stripTerminators(err.Error())
	}
	c.stored = c.msg != ""
}

// Last returns the stored message. The second result is false when no
// failing operation has stored one yet.
func (c *Channel) Last() (string, bool) {
	return c.msg, c.stored
}
