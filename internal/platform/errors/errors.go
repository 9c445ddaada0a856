package apperrors

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
	ErrLocationUnavailable    = errors.New("location unavailable")
	ErrPrayerTimesUnavailable = errors.New("prayer times unavailable")
	ErrCatalogUnavailable     = errors.New("catalog unavailable")
	ErrItemCompleted          = errors.New("item already completed")
	ErrPlaybackFailed         = errors.New("playback failed")
)
