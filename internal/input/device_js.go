//go:build js && wasm

package input

import "syscall/js"

// IsTouchDevice reports whether the browser advertises touch support or
// identifies as a mobile device.
func IsTouchDevice() bool {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return false
	}
	if mtp := nav.Get("maxTouchPoints"); mtp.Type() == js.TypeNumber && mtp.Int() > 0 {
		return true
	}
	if ua := nav.Get("userAgent"); ua.Type() == js.TypeString {
		return IsMobileUserAgent(ua.String())
	}
	return false
}
