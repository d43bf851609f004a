package ytdlp

import (
	"context"
	"strings"

	goytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/vidgrab/yt-extract/pkg/extractor"
)

// "all" asks yt-dlp for every representation it knows about: combined
// and split audio/video streams plus adaptive manifests.
const formatPolicy = "all"

type ExtractorOption struct {
	ExePath string
	Proxy   string
}

type Extractor struct {
	exePath string
	proxy   string
}

func New(opt ExtractorOption) *Extractor {
	return &Extractor{
		exePath: opt.ExePath,
		proxy:   opt.Proxy,
	}
}

func (e *Extractor) Name() string {
	return "yt-dlp"
}

func (e *Extractor) Extract(ctx context.Context, url string, options extractor.Options) (gjson.Result, error) {
	cmd := goytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		DumpSingleJSON().
		Format(formatPolicy)
	if e.exePath != "" {
		cmd = cmd.SetExecutable(e.exePath)
	}
	if e.proxy != "" {
		cmd = cmd.Proxy(e.proxy)
	}
	if options.CookieFile != "" {
		cmd = cmd.Cookies(options.CookieFile)
	}

	res, err := cmd.Run(ctx, url)
	if err != nil {
		if msg := downloadErrorOf(res, err); msg != "" {
			return gjson.Result{}, &extractor.DownloadError{Message: msg}
		}
		return gjson.Result{}, errors.Wrap(err, "yt-dlp")
	}

	out := strings.TrimSpace(res.Stdout)
	if !gjson.Valid(out) {
		return gjson.Result{}, errors.New("yt-dlp emitted invalid JSON")
	}
	return gjson.Parse(out), nil
}

// yt-dlp prefixes extraction failures (private video, geo block, ...)
// with "ERROR:" on stderr; everything else is an invocation problem.
func downloadErrorOf(res *goytdlp.Result, err error) string {
	stderr := err.Error()
	if res != nil && res.Stderr != "" {
		stderr = res.Stderr
	}
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "ERROR:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
	}
	return ""
}
