package extractor

import "errors"

// DownloadError carries the extraction backend's own failure message,
// e.g. unavailable, private or region-locked media.
type DownloadError struct {
	Message string
}

func (e *DownloadError) Error() string {
	return e.Message
}

func IsDownloadError(err error) bool {
	var de *DownloadError
	return errors.As(err, &de)
}
