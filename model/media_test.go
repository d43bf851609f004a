package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatAbsentFieldsSerializeAsNull(t *testing.T) {
	by, err := json.Marshal(&Format{FormatID: "251", Quality: "160kbps", URL: "u", Type: FormatTypeAudio})
	if err != nil {
		t.Fatal(err)
	}
	out := string(by)
	for _, key := range []string{`"ext":null`, `"filesize":null`, `"vcodec":null`, `"height":null`} {
		if !strings.Contains(out, key) {
			t.Fatalf("missing %s in %s", key, out)
		}
	}
}

func TestEnvelopeShapes(t *testing.T) {
	success, _ := json.Marshal(Succeed(&MediaInfo{ID: "x", Formats: FormatList{}}))
	if strings.Contains(string(success), `"error"`) {
		t.Fatalf("success envelope must omit error: %s", success)
	}
	failure, _ := json.Marshal(&ExtractResult{Success: false, Error: "boom"})
	if strings.Contains(string(failure), `"data"`) {
		t.Fatalf("failure envelope must omit data: %s", failure)
	}
}
