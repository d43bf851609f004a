package extract

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/vidgrab/yt-extract/model"
	"github.com/vidgrab/yt-extract/pkg/cookies"
	"github.com/vidgrab/yt-extract/pkg/extractor"
	"github.com/vidgrab/yt-extract/pkg/formats"
)

type Service struct {
	ie extractor.Extractor
}

func New(ie extractor.Extractor) *Service {
	return &Service{ie: ie}
}

// Run performs one extraction and always yields an envelope, never an
// error: every failure class lands in ExtractResult.Error verbatim.
// The temporary cookie file, if one gets created, lives exactly as
// long as this call.
func (s *Service) Run(ctx context.Context, url, cookieFile string) *model.ExtractResult {
	var options extractor.Options
	if cookieFile != "" {
		path, cleanup := cookies.Prepare(cookieFile)
		defer cleanup()
		options.CookieFile = path
	}

	info, err := s.ie.Extract(ctx, url, options)
	if err != nil {
		return model.Fail(err)
	}
	return model.Succeed(shape(info))
}

func shape(info gjson.Result) *model.MediaInfo {
	author := info.Get("uploader").String()
	if author == "" {
		author = info.Get("channel").String()
	}
	return &model.MediaInfo{
		ID:          info.Get("id").String(),
		Title:       info.Get("title").String(),
		Description: info.Get("description").String(),
		Author:      author,
		Duration:    optInt(info.Get("duration")),
		Thumbnail:   info.Get("thumbnail").String(),
		ViewCount:   optInt(info.Get("view_count")),
		LikeCount:   optInt(info.Get("like_count")),
		Formats:     formats.Normalize(info.Get("formats").Array(), info.Get("duration").Float()),
	}
}

func optInt(v gjson.Result) *int64 {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	n := v.Int()
	return &n
}
