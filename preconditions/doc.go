// Package preconditions provides argument checks for constructors and methods.
//
// Each check either returns its input unchanged or a typed failure, which
// keeps checks usable inline:
//
//	func NewClient(conn *Conn, name string) (*Client, error) {
//	    if _, err := preconditions.CheckAllNotNil(conn); err != nil {
//	        return nil, err
//	    }
//
//	    name, err := preconditions.CheckString(name, "[a-z][a-z0-9-]*", "bad client name %q", name)
//	    if err != nil {
//	        return nil, err
//	    }
//
//	    return &Client{conn: conn, name: name}, nil
//	}
//
// Checking several values against the same condition takes one call instead
// of one per value:
//
//	_, err := preconditions.CheckArguments(positive, value, bitmask)
//
// The Must variants panic with the same error value instead of returning it,
// for call sites where a failed check is a programming error.
//
// Failures are *NullReferenceError or *InvalidArgumentError and wrap
// errors.ErrNullReference or errors.ErrInvalidArgument respectively. All
// checks stop at the first violation.
//
// Messages are optional. When none is given the rendered message is the
// literal "null". A string followed by further arguments is treated as a
// format string; any other arguments are joined with fmt.Sprint.
//
// Nothing in this package keeps state, so every function is safe for
// concurrent use.
package preconditions
