package recruitment

import "errors"

var (
	ErrJobRequired = errors.New("job is required")
	ErrDuplicateID = errors.New("duplicate id")
	ErrNoMatches   = errors.New("no matches for job")
	ErrNoExperts   = errors.New("no experts available")
	ErrEmptyEntry  = errors.New("empty roster entry")
)
