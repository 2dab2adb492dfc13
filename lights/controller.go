package lights

import (
	"fmt"
	"sync"

	"github.com/scheerer/aries-lights/internal/sysfs"
	"go.uber.org/zap"
)

// Config holds the sysfs paths for the Aries lighting hardware. The
// defaults are the fixed paths for this target; the env overrides
// exist for bring-up and tests, not for device discovery.
type Config struct {
	RedLEDDir        string `env:"RED_LED_DIR" envDefault:"/sys/class/leds/red"`
	BlueLEDDir       string `env:"BLUE_LED_DIR" envDefault:"/sys/class/leds/blue"`
	LCDFile          string `env:"LCD_FILE" envDefault:"/sys/class/backlight/s5p_bl/brightness"`
	KeyboardFile     string `env:"KEYBOARD_FILE" envDefault:"/sys/devices/platform/s3c-keypad/brightness"`
	ButtonsFile      string `env:"BUTTONS_FILE" envDefault:"/sys/class/sec/t_key/brightness"`
	TouchVoltageFile string `env:"TOUCH_VOLTAGE_FILE" envDefault:"/sys/devices/virtual/sec/t_key/touchleds_voltage"`
}

// Controller is the lighting entry point for all five logical lights.
// One mutex serializes every sysfs write sequence so that battery and
// notification updates to the shared LED channels never interleave.
type Controller struct {
	config Config
	writer Writer

	mu                sync.Mutex
	batteryRed        ledState
	batteryBlue       ledState
	notificationsRed  ledState
	notificationsBlue ledState
}

// New returns a Controller writing through the real sysfs writer.
// All LED states start disabled; nothing is read back from hardware.
func New(config Config) *Controller {
	return NewWithWriter(config, sysfs.NewWriter())
}

// NewWithWriter is New with an injected Writer.
func NewWithWriter(config Config, w Writer) *Controller {
	return &Controller{config: config, writer: w}
}

// Open binds a handle to one logical light by name. Unknown names fail
// with ErrUnsupportedLight.
func (c *Controller) Open(name string) (*Device, error) {
	var set func(Request) error
	switch name {
	case LightBacklight:
		set = c.SetBacklight
	case LightKeyboard:
		set = c.SetKeyboard
	case LightButtons:
		set = c.SetButtons
	case LightBattery:
		set = c.SetBattery
	case LightNotifications:
		set = c.SetNotifications
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLight, name)
	}

	logger.With(zap.String("light", name)).Debug("opened light")
	return &Device{name: name, set: set}, nil
}

// Device is a handle bound to one logical light at Open time.
type Device struct {
	name string
	set  func(Request) error
}

// Name returns the logical light this handle is bound to.
func (d *Device) Name() string {
	return d.name
}

// Set applies a request to the bound light.
func (d *Device) Set(req Request) error {
	return d.set(req)
}

// Close releases the handle. No resources are held.
func (d *Device) Close() error {
	return nil
}

// SetBattery updates the battery light. The stored battery states for
// both channels are replaced, then each channel is re-resolved against
// the stored notification state, which keeps priority: an active
// notification is not overridden by a battery change.
func (c *Controller) SetBattery(req Request) error {
	logger.With(
		zap.Uint32("color", req.Color),
		zap.Int("flashMode", int(req.FlashMode)),
		zap.Int("flashOnMS", req.FlashOnMS),
		zap.Int("flashOffMS", req.FlashOffMS)).
		Debug("set battery light")

	c.mu.Lock()
	defer c.mu.Unlock()

	c.batteryRed, c.batteryBlue = composeLEDStates(req)

	if err := setLED(c.writer, c.config.RedLEDDir, c.batteryRed, c.notificationsRed); err != nil {
		return err
	}
	return setLED(c.writer, c.config.BlueLEDDir, c.batteryBlue, c.notificationsBlue)
}

// SetNotifications updates the notification light. Both channels are
// re-resolved against the stored battery state, so clearing a
// notification re-applies whatever the battery light last asked for.
func (c *Controller) SetNotifications(req Request) error {
	logger.With(
		zap.Uint32("color", req.Color),
		zap.Int("flashMode", int(req.FlashMode)),
		zap.Int("flashOnMS", req.FlashOnMS),
		zap.Int("flashOffMS", req.FlashOffMS)).
		Debug("set notification light")

	c.mu.Lock()
	defer c.mu.Unlock()

	c.notificationsRed, c.notificationsBlue = composeLEDStates(req)

	if err := setLED(c.writer, c.config.RedLEDDir, c.batteryRed, c.notificationsRed); err != nil {
		return err
	}
	return setLED(c.writer, c.config.BlueLEDDir, c.batteryBlue, c.notificationsBlue)
}

// SetBacklight writes the color's luma to the LCD brightness file.
func (c *Controller) SetBacklight(req Request) error {
	brightness := Luma(req.Color)

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writer.WriteInt(c.config.LCDFile, brightness)
}

// SetKeyboard turns the keyboard light on or off. The keypad driver
// wants 1 for on and 2 for off.
func (c *Controller) SetKeyboard(req Request) error {
	control := 2
	if req.Color&0x00ffffff != 0 {
		control = 1
	}

	logger.With(zap.Uint32("color", req.Color), zap.Int("control", control)).
		Debug("set keyboard light")

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writer.WriteInt(c.config.KeyboardFile, control)
}

// SetButtons drives the touch key lights. The hardware couples them to
// the keyboard light, so the keyboard is toggled first; that result
// and the optional voltage write are dropped, and only the final
// buttons write is reported. The lock is taken per write window here
// because SetKeyboard takes it too.
func (c *Controller) SetButtons(req Request) error {
	_ = c.SetKeyboard(req)

	enabled := 0
	if req.Color&0x00ffffff != 0 {
		enabled = 1
	}
	brightness := Luma(req.Color)

	if brightness > 0 {
		c.mu.Lock()
		_ = c.writer.WriteInt(c.config.TouchVoltageFile, brightness)
		c.mu.Unlock()
	}

	logger.With(
		zap.Uint32("color", req.Color),
		zap.Int("brightness", brightness),
		zap.Int("enabled", enabled)).
		Debug("set button lights")

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writer.WriteInt(c.config.ButtonsFile, enabled)
}
