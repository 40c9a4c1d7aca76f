package txt

import "errors"

var (
	// a timestamp token has a component that is not a number
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// the dominant timestamp shape was requested for a document without
	// any recognized timestamp
	ErrNoTimestampsFound = errors.New("no timestamps found")

	// parsing produced zero cues
	ErrEmptyResult = errors.New("no subtitles found in this input")
)
