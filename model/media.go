package model

const (
	FormatTypeVideo = "video"
	FormatTypeAudio = "audio"
)

// Format is one downloadable representation of a media entry. Pointer
// fields carry no omitempty on purpose: absent values must serialize
// as null, not disappear.
type Format struct {
	FormatID string   `json:"format_id"`
	Quality  string   `json:"quality"`
	Ext      *string  `json:"ext"`
	Filesize *int64   `json:"filesize"`
	URL      string   `json:"url"`
	Type     string   `json:"type"`
	Height   *int64   `json:"height"`
	Width    *int64   `json:"width"`
	FPS      *int64   `json:"fps"`
	Vcodec   *string  `json:"vcodec"`
	Acodec   *string  `json:"acodec"`
	Abr      *float64 `json:"abr"`
	Tbr      *float64 `json:"tbr"`
}

type FormatList []*Format

// IsCombined reports whether the format is a single stream carrying
// both video and audio.
func (f *Format) IsCombined() bool {
	return f.Type == FormatTypeVideo && f.Acodec != nil
}

type MediaInfo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Author      string     `json:"author"`
	Duration    *int64     `json:"duration"`
	Thumbnail   string     `json:"thumbnail"`
	ViewCount   *int64     `json:"view_count"`
	LikeCount   *int64     `json:"like_count"`
	Formats     FormatList `json:"formats"`
}

// ExtractResult is the single JSON document the tool prints. Callers
// inspect Success; the process exit code only distinguishes zero from
// nonzero.
type ExtractResult struct {
	Success bool       `json:"success"`
	Data    *MediaInfo `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}

func Succeed(info *MediaInfo) *ExtractResult {
	return &ExtractResult{Success: true, Data: info}
}

func Fail(err error) *ExtractResult {
	return &ExtractResult{Success: false, Error: err.Error()}
}
