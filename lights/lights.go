// Package lights drives the Aries lighting hardware: two physical LED
// channels (red, blue) shared by the battery and notification lights,
// plus the LCD backlight, keyboard and button lights. All control goes
// through write-only sysfs attribute files.
package lights

import (
	"errors"

	"github.com/scheerer/aries-lights/internal/logging"
)

var logger = logging.New("lights")

// Logical light names accepted by Controller.Open.
const (
	LightBacklight     = "backlight"
	LightKeyboard      = "keyboard"
	LightButtons       = "buttons"
	LightBattery       = "battery"
	LightNotifications = "notifications"
)

// ErrUnsupportedLight is returned by Open for names outside the five
// logical lights.
var ErrUnsupportedLight = errors.New("unsupported light")

// FlashMode selects whether a light blinks.
type FlashMode int

const (
	FlashNone FlashMode = iota
	FlashTimed
)

// Request describes the desired state of one logical light. Color is
// 24-bit RGB packed into the low three bytes; the top byte is unused.
// FlashOnMS/FlashOffMS are only meaningful with FlashTimed.
type Request struct {
	Color      uint32
	FlashMode  FlashMode
	FlashOnMS  int
	FlashOffMS int
}

// Writer writes formatted values to sysfs attribute files. The real
// implementation lives in internal/sysfs; tests substitute a recorder.
type Writer interface {
	// WriteInt writes value as decimal text followed by a newline.
	WriteInt(path string, value int) error
	// WriteString writes value as-is, with no added newline.
	WriteString(path string, value string) error
}

// Luma returns the perceptual brightness (0-255) of a packed RGB
// color, using integer weights 77/150/29 over 256.
func Luma(color uint32) int {
	c := color & 0x00ffffff
	r := int(c >> 16 & 0xff)
	g := int(c >> 8 & 0xff)
	b := int(c & 0xff)
	return (77*r + 150*g + 29*b) >> 8
}
