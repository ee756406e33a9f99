package constants

import "errors"

var (
	// ErrGroupNotFound unrecognized ticker group name
	ErrGroupNotFound = errors.New("ticker group not found")
	// ErrDataUnavailable provider has no data for the symbol
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrNoSeries chart has no surviving series
	ErrNoSeries = errors.New("no series to render")
	// ErrWrite local destination write failed
	ErrWrite = errors.New("write failed")
	// ErrUpload remote destination upload failed
	ErrUpload = errors.New("upload failed")
)
