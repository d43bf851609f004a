package extractor

import (
	"context"

	"github.com/tidwall/gjson"
)

type Options struct {
	// CookieFile is a path to a flat Netscape cookie file, empty for
	// unauthenticated extraction.
	CookieFile string
}

// Extractor is the external metadata capability. Extract returns the
// raw info document for a single media URL; the caller owns all
// shaping and normalization.
type Extractor interface {
	Extract(ctx context.Context, url string, options Options) (gjson.Result, error)
	Name() string
}
