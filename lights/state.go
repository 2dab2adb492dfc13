package lights

import "path/filepath"

// ledState is the resolved target for one physical LED channel. Four
// records persist on the Controller, one per (owner, channel) pair.
type ledState struct {
	enabled  bool
	delayOn  int
	delayOff int
}

// composeLEDStates derives the red and blue channel states from one
// request. Red follows color bits 16-23, blue bits 0-7; both channels
// share the request's flash timing.
func composeLEDStates(req Request) (red, blue ledState) {
	var delayOn, delayOff int

	switch req.FlashMode {
	case FlashTimed:
		delayOn = req.FlashOnMS
		delayOff = req.FlashOffMS
	case FlashNone:
	default:
		logger.Infof("unsupported flash mode %d, defaulting to none", req.FlashMode)
	}

	red = ledState{
		enabled:  req.Color>>16&0xff != 0,
		delayOn:  delayOn,
		delayOff: delayOff,
	}
	blue = ledState{
		enabled:  req.Color&0xff != 0,
		delayOn:  delayOn,
		delayOff: delayOff,
	}
	return red, blue
}

// setLED applies the winning state for one LED channel directory.
// Notifications take priority over battery; with neither enabled the
// LED is turned off. The write sequence aborts on the first error,
// leaving a partially applied state that the next call corrects.
func setLED(w Writer, dir string, battery, notifications ledState) error {
	var state *ledState
	if notifications.enabled {
		state = &notifications
	} else if battery.enabled {
		state = &battery
	}

	if state == nil {
		if err := w.WriteString(filepath.Join(dir, "trigger"), "none"); err != nil {
			return err
		}
		return w.WriteString(filepath.Join(dir, "brightness"), "0")
	}

	if state.delayOn > 0 && state.delayOff > 0 {
		// The kernel blinks indefinitely for any non-zero blink_count,
		// so 1 is as good as any other value.
		if err := w.WriteString(filepath.Join(dir, "trigger"), "notification"); err != nil {
			return err
		}
		if err := w.WriteString(filepath.Join(dir, "brightness"), "255"); err != nil {
			return err
		}
		if err := w.WriteString(filepath.Join(dir, "blink_count"), "1"); err != nil {
			return err
		}
		if err := w.WriteInt(filepath.Join(dir, "delay_on"), state.delayOn); err != nil {
			return err
		}
		return w.WriteInt(filepath.Join(dir, "delay_off"), state.delayOff)
	}

	if err := w.WriteString(filepath.Join(dir, "trigger"), "none"); err != nil {
		return err
	}
	return w.WriteString(filepath.Join(dir, "brightness"), "255")
}
