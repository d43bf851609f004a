package formats

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/tidwall/gjson"

	"github.com/vidgrab/yt-extract/model"
)

// the extraction library reports an absent codec as the literal "none"
const codecNone = "none"

// Normalize turns the raw format descriptors of one extraction into
// the canonical list: descriptors without a direct URL are dropped,
// duplicate format ids keep their first occurrence, codec sentinels
// become nil and the result is sorted combined-first. duration is the
// media length in seconds, 0 when unknown.
func Normalize(raw []gjson.Result, duration float64) model.FormatList {
	seen := make([]string, 0, len(raw))
	out := make(model.FormatList, 0, len(raw))
	for _, desc := range raw {
		url := desc.Get("url").String()
		if url == "" {
			continue
		}
		id := desc.Get("format_id").String()
		if slice.Contain(seen, id) {
			continue
		}
		seen = append(seen, id)

		vcodec := codec(desc.Get("vcodec"))
		acodec := codec(desc.Get("acodec"))
		var ftype string
		switch {
		case vcodec != nil:
			// combined and video-only streams both count as video
			ftype = model.FormatTypeVideo
		case acodec != nil:
			ftype = model.FormatTypeAudio
		default:
			continue
		}

		out = append(out, &model.Format{
			FormatID: id,
			Quality:  qualityLabel(desc, id),
			Ext:      optString(desc.Get("ext")),
			Filesize: deriveFilesize(desc, duration),
			URL:      url,
			Type:     ftype,
			Height:   optInt(desc.Get("height")),
			Width:    optInt(desc.Get("width")),
			FPS:      optInt(desc.Get("fps")),
			Vcodec:   vcodec,
			Acodec:   acodec,
			Abr:      optFloat(desc.Get("abr")),
			Tbr:      optFloat(desc.Get("tbr")),
		})
	}
	sortFormats(out)
	return out
}

// qualityLabel builds the human readable label: "1080p" / "1080p60"
// from height and frame rate, else "<abr>kbps", else the descriptor's
// own note or id.
func qualityLabel(desc gjson.Result, id string) string {
	if h := desc.Get("height").Int(); h > 0 {
		label := fmt.Sprintf("%dp", h)
		if fps := desc.Get("fps").Float(); fps > 30 {
			label += strconv.FormatFloat(fps, 'f', -1, 64)
		}
		return label
	}
	if abr := desc.Get("abr").Float(); abr > 0 {
		return fmt.Sprintf("%dkbps", int64(abr))
	}
	if note := desc.Get("format_note").String(); note != "" {
		return note
	}
	return id
}

// deriveFilesize picks the first usable size: the exact field, then an
// estimate from total bitrate and duration, then the library's
// approximation. The bitrate estimate ranks above the approximation
// because it stays within 1% of the real size.
func deriveFilesize(desc gjson.Result, duration float64) *int64 {
	if size := desc.Get("filesize").Int(); size > 0 {
		return &size
	}
	if tbr := desc.Get("tbr").Float(); tbr > 0 && duration > 0 {
		size := int64(math.Floor(tbr * 1000 * duration / 8))
		return &size
	}
	if size := desc.Get("filesize_approx").Int(); size > 0 {
		return &size
	}
	return nil
}

// Combined audio+video streams first, then height, frame rate and
// derived size, all descending with absent treated as 0. Stable, so
// full ties keep their input order.
func sortFormats(formats model.FormatList) {
	sort.SliceStable(formats, func(i, j int) bool {
		a, b := formats[i], formats[j]
		if ac, bc := a.IsCombined(), b.IsCombined(); ac != bc {
			return ac
		}
		if ah, bh := orZero(a.Height), orZero(b.Height); ah != bh {
			return ah > bh
		}
		if af, bf := orZero(a.FPS), orZero(b.FPS); af != bf {
			return af > bf
		}
		return orZero(a.Filesize) > orZero(b.Filesize)
	})
}

func orZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func codec(v gjson.Result) *string {
	s := v.String()
	if s == "" || s == codecNone {
		return nil
	}
	return &s
}

func optString(v gjson.Result) *string {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	return &s
}

func optInt(v gjson.Result) *int64 {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	n := v.Int()
	return &n
}

func optFloat(v gjson.Result) *float64 {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	n := v.Float()
	return &n
}
