// Package platform derives coarse platform/browser/device labels from a
// User-Agent string for the login audit trail. It is a plain lookup table,
// not a full UA parser.
package platform

import "strings"

type Info struct {
	Platform string
	Browser  string
	Device   string
}

const unknown = "Unknown"

func Detect(userAgent string) Info {
	ua := strings.ToLower(userAgent)
	return Info{
		Platform: detectPlatform(ua),
		Browser:  detectBrowser(ua),
		Device:   detectDevice(ua),
	}
}

// ordered: "iphone"/"ipad" must win over the "mac os" token they also carry
var platforms = []struct {
	token string
	name  string
}{
	{"android", "Android"},
	{"iphone", "iPhone"},
	{"ipad", "iPad"},
	{"windows nt", "Windows"},
	{"macintosh", "macOS"},
	{"mac os", "macOS"},
	{"linux", "Linux"},
}

func detectPlatform(ua string) string {
	for _, p := range platforms {
		if strings.Contains(ua, p.token) {
			return p.name
		}
	}
	return unknown
}

func detectBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return unknown
}

func detectDevice(ua string) string {
	switch {
	case strings.Contains(ua, "tablet"), strings.Contains(ua, "ipad"):
		return "Tablet"
	case strings.Contains(ua, "mobile"), strings.Contains(ua, "android"), strings.Contains(ua, "iphone"):
		return "Mobile"
	}
	return "Desktop"
}
