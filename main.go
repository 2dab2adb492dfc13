package main

import (
	"strconv"
	"strings"

	"github.com/caarlos0/env"
	"github.com/scheerer/aries-lights/internal/logging"
	"github.com/scheerer/aries-lights/lights"
	"go.uber.org/zap"
)

var (
	logger = logging.New("main")
	config = LightsConfig{}
)

type LightsConfig struct {
	Light      string `env:"LIGHT" envDefault:"notifications"`
	Color      string `env:"COLOR" envDefault:"0x0000FF"`
	FlashMode  string `env:"FLASH_MODE" envDefault:"NONE"`
	FlashOnMS  int    `env:"FLASH_ON_MS" envDefault:"0"`
	FlashOffMS int    `env:"FLASH_OFF_MS" envDefault:"0"`
}

func main() {
	defer logger.Sync()

	err := env.Parse(&config)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	pathConfig := lights.Config{}
	err = env.Parse(&pathConfig)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse sysfs path overrides")
	}

	logger.With(zap.Any("config", config)).Info("Applying light state")
	logger.Info("Set LIGHT to one of: [backlight, keyboard, buttons, battery, notifications]")
	logger.Info("Set COLOR to a packed 24-bit RGB value, e.g. 0xFF0000")
	logger.Info("Set FLASH_MODE to NONE or TIMED; TIMED uses FLASH_ON_MS/FLASH_OFF_MS")

	color, err := parseColor(config.Color)
	if err != nil {
		logger.With(zap.Error(err)).Fatalf("invalid COLOR: %v", config.Color)
	}

	var flashMode lights.FlashMode
	switch strings.ToUpper(config.FlashMode) {
	case "NONE":
		flashMode = lights.FlashNone
	case "TIMED":
		flashMode = lights.FlashTimed
	default:
		logger.Fatalf("unknown flash mode: %v", config.FlashMode)
	}

	controller := lights.New(pathConfig)

	device, err := controller.Open(config.Light)
	if err != nil {
		logger.With(zap.Error(err)).Fatalf("unknown light: %v", config.Light)
	}
	defer device.Close()

	err = device.Set(lights.Request{
		Color:      color,
		FlashMode:  flashMode,
		FlashOnMS:  config.FlashOnMS,
		FlashOffMS: config.FlashOffMS,
	})
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to apply light state")
	}

	logger.With(zap.String("light", device.Name())).Info("Light state applied")
}

func parseColor(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
