package holidays

import "errors"

// ErrInvalidActiveRange indicates a rule's active range has neither a usable
// from nor to boundary. It signals a caller bug, not bad rule data.
var ErrInvalidActiveRange = errors.New("holidays: invalid active range")

// ErrInvalidOverride indicates a per-year override that is neither disabled
// nor carries a valid date.
var ErrInvalidOverride = errors.New("holidays: invalid year override")

// ErrInvalidType indicates a holiday type name outside the recognized set.
var ErrInvalidType = errors.New("holidays: invalid holiday type")
