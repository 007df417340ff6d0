// Package errorspkg provides app wide errors.
package errorspkg

import "errors"

// ErrInternal hides failures the caller cannot act on. The cause is logged
// where it happened.
var ErrInternal = errors.New("internal error")
