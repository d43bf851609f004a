package cookies

import (
	"fmt"
	"os"
	"strings"

	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/tidwall/gjson"
)

// yt-dlp rejects cookie files missing this first line
const netscapeHeader = "# Netscape HTTP Cookie File"

var allowedDomains = []string{"youtube.com", "google.com"}

func noop() {}

// Prepare resolves a cookie export into a file the extractor can
// consume. A flat Netscape file passes through untouched. A JSON
// export (content starting with '[') is filtered to youtube/google
// domains and rewritten into a temporary Netscape file; cleanup
// removes it and must be called once the extraction is done. Any read
// or parse failure yields an empty path: extraction then simply runs
// unauthenticated.
func Prepare(path string) (cookieFile string, cleanup func()) {
	content, err := fileutil.ReadFileToString(path)
	if err != nil {
		return "", noop
	}
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		// already flat, hand the original path through
		return path, noop
	}
	if !gjson.Valid(trimmed) {
		return "", noop
	}

	lines := make([]string, 0)
	for _, entry := range gjson.Parse(trimmed).Array() {
		if line, ok := netscapeLine(entry); ok {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", noop
	}

	tmp, err := os.CreateTemp("", "yt-extract-cookies-*.txt")
	if err != nil {
		return "", noop
	}
	_, werr := tmp.WriteString(netscapeHeader + "\n\n" + strings.Join(lines, "\n") + "\n")
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		return "", noop
	}
	return tmp.Name(), func() {
		// already-gone is fine
		os.Remove(tmp.Name())
	}
}

// netscapeLine renders one export entry as a flat cookie line:
// domain \t flag \t path \t secure \t expires \t name \t value.
func netscapeLine(entry gjson.Result) (string, bool) {
	domain := entry.Get("domain").String()
	if !relevantDomain(domain) {
		return "", false
	}
	name := entry.Get("name").String()
	value := entry.Get("value").String()
	if name == "" || value == "" {
		return "", false
	}

	if !strings.HasPrefix(domain, ".") {
		// leading dot widens the cookie to subdomains
		domain = "." + domain
	}
	flag := "FALSE"
	if strings.HasPrefix(domain, ".") {
		flag = "TRUE"
	}
	cookiePath := entry.Get("path").String()
	if cookiePath == "" {
		cookiePath = "/"
	}
	secure := "FALSE"
	if entry.Get("secure").Bool() {
		secure = "TRUE"
	}
	expires := int64(entry.Get("expirationDate").Float())
	if expires == 0 {
		expires = int64(entry.Get("expires").Float())
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%s\t%s",
		domain, flag, cookiePath, secure, expires, name, value), true
}

func relevantDomain(domain string) bool {
	return slice.ContainBy(allowedDomains, func(d string) bool {
		return strings.Contains(domain, d)
	})
}
