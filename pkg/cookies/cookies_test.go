package cookies

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCookieFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookies.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPrepareFlatFilePassesThrough(t *testing.T) {
	path := writeCookieFile(t, "# Netscape HTTP Cookie File\n.youtube.com\tTRUE\t/\tTRUE\t0\tSID\tabc\n")
	got, cleanup := Prepare(path)
	defer cleanup()
	if got != path {
		t.Fatalf("flat file should pass through unchanged, got %q", got)
	}
}

func TestPrepareStructuredExport(t *testing.T) {
	path := writeCookieFile(t, `[
		{"domain":"youtube.com","name":"SID","value":"abc","path":"/","secure":true,"expirationDate":1735689600.5},
		{"domain":"example.com","name":"other","value":"zzz"}
	]`)
	got, cleanup := Prepare(path)
	defer cleanup()
	if got == "" || got == path {
		t.Fatalf("expected a fresh temp file, got %q", got)
	}
	content, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	text := string(content)
	if !strings.HasPrefix(text, netscapeHeader) {
		t.Fatalf("missing netscape header:\n%s", text)
	}
	if !strings.Contains(text, ".youtube.com\tTRUE\t/\tTRUE\t1735689600\tSID\tabc") {
		t.Fatalf("unexpected cookie line:\n%s", text)
	}
	if strings.Contains(text, "example.com") {
		t.Fatalf("foreign domain must be filtered out:\n%s", text)
	}
}

func TestPrepareKeepsExistingDotPrefix(t *testing.T) {
	path := writeCookieFile(t, `[{"domain":".google.com","name":"NID","value":"x"}]`)
	got, cleanup := Prepare(path)
	defer cleanup()
	content, _ := os.ReadFile(got)
	if !strings.Contains(string(content), ".google.com\tTRUE\t/\tFALSE\t0\tNID\tx") {
		t.Fatalf("unexpected line:\n%s", content)
	}
	if strings.Contains(string(content), "..google.com") {
		t.Fatalf("domain must not be double-dotted:\n%s", content)
	}
}

func TestPrepareSkipsEntriesMissingNameOrValue(t *testing.T) {
	path := writeCookieFile(t, `[
		{"domain":"youtube.com","value":"orphan"},
		{"domain":"youtube.com","name":"orphan"},
		{"domain":"youtube.com","name":"SID","value":"ok"}
	]`)
	got, cleanup := Prepare(path)
	defer cleanup()
	content, _ := os.ReadFile(got)
	if n := strings.Count(string(content), "\t"); n != 6 {
		t.Fatalf("expected exactly one cookie line (6 tabs), got %d:\n%s", n, content)
	}
}

func TestPrepareNoRelevantCookies(t *testing.T) {
	path := writeCookieFile(t, `[{"domain":"example.com","name":"a","value":"b"}]`)
	got, cleanup := Prepare(path)
	defer cleanup()
	if got != "" {
		t.Fatalf("no relevant cookies should yield no file, got %q", got)
	}
}

func TestPrepareMalformedJSONFallsBack(t *testing.T) {
	path := writeCookieFile(t, `[{"domain":"youtube.com","name":`)
	got, cleanup := Prepare(path)
	defer cleanup()
	if got != "" {
		t.Fatalf("malformed export must degrade to no cookies, got %q", got)
	}
}

func TestPrepareUnreadableFileFallsBack(t *testing.T) {
	got, cleanup := Prepare(filepath.Join(t.TempDir(), "does-not-exist.json"))
	defer cleanup()
	if got != "" {
		t.Fatalf("unreadable file must degrade to no cookies, got %q", got)
	}
}

func TestCleanupRemovesTempFile(t *testing.T) {
	path := writeCookieFile(t, `[{"domain":"youtube.com","name":"SID","value":"abc"}]`)
	got, cleanup := Prepare(path)
	if got == "" {
		t.Fatal("expected a temp file")
	}
	cleanup()
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Fatalf("temp file should be gone after cleanup, stat err = %v", err)
	}
	// second cleanup must not panic on the missing file
	cleanup()
}
