package timespan

import "github.com/mailru/timespan/internal/pkg/tserror"

// Error kinds, match them with errors.Is.
var (
	ErrArgumentNull       = tserror.ErrArgumentNull
	ErrArgumentOutOfRange = tserror.ErrArgumentOutOfRange
	ErrNotInteger         = tserror.ErrNotInteger
	ErrOverflow           = tserror.ErrOverflow
)

// Error details, extract them with errors.As.
type (
	ArgumentNullError       = tserror.ErrArgumentNullDecl
	ArgumentOutOfRangeError = tserror.ErrArgumentOutOfRangeDecl
	ArgumentError           = tserror.ErrArgumentDecl
	OverflowError           = tserror.ErrOverflowDecl
)
