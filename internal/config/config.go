// Package config loads the construction-time configuration for the
// virtualization core: device map selection, per-element mapper overrides,
// actuator assignments, and built-in property percentages.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/soar/padbridge/internal/element"
	"github.com/soar/padbridge/internal/mapper"
	"github.com/soar/padbridge/internal/osinput"
	"github.com/soar/padbridge/internal/virtual"
)

// Properties holds the built-in property percentages. All values are plain
// percentages (0..100).
type Properties struct {
	UseBuiltin bool

	StickDeadzonePercent     uint32
	StickSaturationPercent   uint32
	CircleToSquarePercent    uint32
	TriggerDeadzonePercent   uint32
	TriggerSaturationPercent uint32

	ForceFeedbackStrengthPercent uint32
	MouseSpeedPercent            uint32
}

// Config is the recognized configuration surface.
type Config struct {
	ListenAddr string

	// MapperType names a built-in device map; Elements holds per-element
	// mapper-string overrides; Actuators holds per-slot force-feedback
	// descriptor overrides.
	MapperType string
	Elements   map[string]string
	Actuators  map[string]string

	Properties Properties
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ListenAddr: ":8080",
		MapperType: "StandardGamepad",
		Properties: Properties{
			UseBuiltin:                   true,
			StickDeadzonePercent:         0,
			StickSaturationPercent:       100,
			CircleToSquarePercent:        0,
			TriggerDeadzonePercent:       0,
			TriggerSaturationPercent:     100,
			ForceFeedbackStrengthPercent: 100,
			MouseSpeedPercent:            100,
		},
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a malformed file or out-of-range value is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("listen_addr", cfg.ListenAddr)
	v.SetDefault("mapper.type", cfg.MapperType)
	v.SetDefault("properties.use_builtin", cfg.Properties.UseBuiltin)
	v.SetDefault("properties.stick_deadzone_percent", cfg.Properties.StickDeadzonePercent)
	v.SetDefault("properties.stick_saturation_percent", cfg.Properties.StickSaturationPercent)
	v.SetDefault("properties.circle_to_square_percent", cfg.Properties.CircleToSquarePercent)
	v.SetDefault("properties.trigger_deadzone_percent", cfg.Properties.TriggerDeadzonePercent)
	v.SetDefault("properties.trigger_saturation_percent", cfg.Properties.TriggerSaturationPercent)
	v.SetDefault("force_feedback.strength_percent", cfg.Properties.ForceFeedbackStrengthPercent)
	v.SetDefault("mouse.speed_percent", cfg.Properties.MouseSpeedPercent)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.ListenAddr = v.GetString("listen_addr")
	cfg.MapperType = v.GetString("mapper.type")
	cfg.Elements = v.GetStringMapString("mapper.elements")
	cfg.Actuators = v.GetStringMapString("mapper.actuators")

	cfg.Properties.UseBuiltin = v.GetBool("properties.use_builtin")
	cfg.Properties.StickDeadzonePercent = v.GetUint32("properties.stick_deadzone_percent")
	cfg.Properties.StickSaturationPercent = v.GetUint32("properties.stick_saturation_percent")
	cfg.Properties.CircleToSquarePercent = v.GetUint32("properties.circle_to_square_percent")
	cfg.Properties.TriggerDeadzonePercent = v.GetUint32("properties.trigger_deadzone_percent")
	cfg.Properties.TriggerSaturationPercent = v.GetUint32("properties.trigger_saturation_percent")
	cfg.Properties.ForceFeedbackStrengthPercent = v.GetUint32("force_feedback.strength_percent")
	cfg.Properties.MouseSpeedPercent = v.GetUint32("mouse.speed_percent")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	percents := map[string]uint32{
		"stick_deadzone_percent":     c.Properties.StickDeadzonePercent,
		"stick_saturation_percent":   c.Properties.StickSaturationPercent,
		"circle_to_square_percent":   c.Properties.CircleToSquarePercent,
		"trigger_deadzone_percent":   c.Properties.TriggerDeadzonePercent,
		"trigger_saturation_percent": c.Properties.TriggerSaturationPercent,
		"strength_percent":           c.Properties.ForceFeedbackStrengthPercent,
	}
	for key, val := range percents {
		if val > 100 {
			return fmt.Errorf("%s: %d is out of range (0..100)", key, val)
		}
	}
	if _, ok := mapper.Named(c.MapperType); !ok {
		return fmt.Errorf("unknown mapper type %q", c.MapperType)
	}
	for name := range c.Elements {
		if !mapper.IsValidElementName(name) {
			return fmt.Errorf("unknown physical element %q", name)
		}
	}
	return nil
}

// BuildDeviceMap constructs the configured device map: the named built-in
// with any per-element mapper and per-actuator overrides applied.
func (c *Config) BuildDeviceMap() (*mapper.DeviceMap, error) {
	m, ok := mapper.Named(c.MapperType)
	if !ok {
		return nil, fmt.Errorf("unknown mapper type %q", c.MapperType)
	}

	for name, spec := range c.Elements {
		em, err := mapper.FromString(spec)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", name, err)
		}
		m, ok = m.WithElement(name, em)
		if !ok {
			return nil, fmt.Errorf("unknown physical element %q", name)
		}
	}

	if len(c.Actuators) > 0 {
		actuators := m.Actuators()
		for name, spec := range c.Actuators {
			a, err := mapper.ActuatorFromString(spec)
			if err != nil {
				return nil, fmt.Errorf("actuator %s: %w", name, err)
			}
			switch strings.ToLower(name) {
			case "leftmotor", "left_motor":
				actuators.LeftMotor = a
			case "rightmotor", "right_motor":
				actuators.RightMotor = a
			case "leftimpulsetrigger", "left_impulse_trigger":
				actuators.LeftImpulseTrigger = a
			case "rightimpulsetrigger", "right_impulse_trigger":
				actuators.RightImpulseTrigger = a
			default:
				return nil, fmt.Errorf("unknown actuator slot %q", name)
			}
		}
		m = m.WithActuators(actuators)
	}

	return m, nil
}

// Apply configures a freshly constructed virtual controller with the
// built-in properties: stick percentages on stick-driven axes, trigger
// percentages on trigger-driven axes, and the force-feedback gain. The
// global mouse speed is applied process-wide.
func (c *Config) Apply(vc *virtual.Controller) {
	osinput.SetBaseSpeedPercent(c.Properties.MouseSpeedPercent)
	vc.SetForceFeedbackGain(c.Properties.ForceFeedbackStrengthPercent * 100)

	if !c.Properties.UseBuiltin {
		for a := element.AxisX; a < element.AxisCount; a++ {
			vc.SetAxisTransformEnabled(a, false)
		}
		return
	}

	triggerAxes := triggerDrivenAxes(vc.DeviceMap())
	for a := element.AxisX; a < element.AxisCount; a++ {
		dz := c.Properties.StickDeadzonePercent
		sat := c.Properties.StickSaturationPercent
		if triggerAxes[a] {
			dz = c.Properties.TriggerDeadzonePercent
			sat = c.Properties.TriggerSaturationPercent
		}
		vc.SetAxisDeadzone(a, dz*100)
		vc.SetAxisSaturation(a, sat*100)
	}
}

// triggerDrivenAxes marks the virtual axes fed by the physical triggers, so
// the trigger percentages land on the right transforms.
func triggerDrivenAxes(m *mapper.DeviceMap) [element.AxisCount]bool {
	var out [element.AxisCount]bool
	elems := m.Elements()
	for _, em := range []mapper.Mapper{elems.TriggerLT, elems.TriggerRT} {
		if em == nil {
			continue
		}
		for i := 0; i < em.TargetElementCount(); i++ {
			if id, ok := em.TargetElementAt(i); ok && id.Type == element.TypeAxis {
				out[id.Axis] = true
			}
		}
	}
	return out
}
