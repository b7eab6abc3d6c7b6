package platform

import "strings"

// ClassifyUserAgent derives a coarse device classification from a
// user-agent string. Matching is substring-based and intentionally crude:
// the consumer only picks between control-scheme defaults, so a
// misclassified exotic device degrades to the desktop scheme.
func ClassifyUserAgent(ua string) DeviceClass {
	l := strings.ToLower(ua)
	switch {
	case strings.Contains(l, "ipad") || strings.Contains(l, "tablet"):
		return DeviceTablet
	case strings.Contains(l, "android") && !strings.Contains(l, "mobile"):
		// Android without the Mobile token is a tablet form factor.
		return DeviceTablet
	case strings.Contains(l, "mobi") || strings.Contains(l, "iphone"):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}
