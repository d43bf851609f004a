package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/vidgrab/yt-extract/model"
	"github.com/vidgrab/yt-extract/pkg/config"
	"github.com/vidgrab/yt-extract/pkg/extractor/ytdlp"
	"github.com/vidgrab/yt-extract/service/extract"
)

const usageError = "URL required"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("yt-extract", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cookieFile := fs.String("cookies", "", "cookie export, browser JSON or flat Netscape format")
	if err := fs.Parse(args); err != nil {
		return emit(stdout, &model.ExtractResult{Success: false, Error: usageError})
	}
	if fs.NArg() < 1 {
		return emit(stdout, &model.ExtractResult{Success: false, Error: usageError})
	}

	cfg := config.Load()
	svc := extract.New(ytdlp.New(ytdlp.ExtractorOption{
		ExePath: cfg.YtdlpPath,
		Proxy:   cfg.Proxy,
	}))
	return emit(stdout, svc.Run(context.Background(), fs.Arg(0), *cookieFile))
}

func emit(w io.Writer, res *model.ExtractResult) int {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(res)
	if res.Success {
		return 0
	}
	return 1
}
