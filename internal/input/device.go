package input

import "strings"

var mobileAgents = []string{"android", "iphone", "ipad", "ipod", "mobile", "silk", "kindle"}

// IsMobileUserAgent reports whether a browser user agent string belongs to a
// phone or tablet.
func IsMobileUserAgent(ua string) bool {
	ua = strings.ToLower(ua)
	for _, k := range mobileAgents {
		if strings.Contains(ua, k) {
			return true
		}
	}
	return false
}
