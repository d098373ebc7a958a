// Package virtual implements the virtual controller: state aggregation
// through a device map, per-axis property transforms, buffered state-change
// events, and a background goroutine keeping virtual state synchronized with
// the physical device.
package virtual

import "github.com/soar/padbridge/internal/element"

// Property percentages are expressed in hundredths of a percent.
const (
	PropertyPercentMinimum uint32 = 0
	PropertyPercentMaximum uint32 = 10000

	DefaultDeadzone   uint32 = 0
	DefaultSaturation uint32 = 10000
)

// axisProperties holds one axis's transform configuration together with the
// raw-input cutoff values derived from it. Cutoffs are recomputed whenever a
// percentage or the range changes, so the per-sample transform is pure
// arithmetic.
type axisProperties struct {
	deadzone   uint32
	saturation uint32

	rangeMin     int32
	rangeMax     int32
	rangeNeutral int32

	transformEnabled bool

	cutDeadzonePos   int32
	cutDeadzoneNeg   int32
	cutSaturationPos int32
	cutSaturationNeg int32
}

func defaultAxisProperties() axisProperties {
	p := axisProperties{
		deadzone:         DefaultDeadzone,
		saturation:       DefaultSaturation,
		rangeMin:         element.AnalogMinimum,
		rangeMax:         element.AnalogMaximum,
		transformEnabled: true,
	}
	p.recompute()
	return p
}

func (p *axisProperties) recompute() {
	neutral := element.AnalogNeutral
	posExtent := int64(element.AnalogMaximum - neutral)
	negExtent := int64(neutral - element.AnalogMinimum)

	p.cutDeadzonePos = neutral + int32(posExtent*int64(p.deadzone)/int64(PropertyPercentMaximum))
	p.cutDeadzoneNeg = neutral - int32(negExtent*int64(p.deadzone)/int64(PropertyPercentMaximum))
	p.cutSaturationPos = neutral + int32(posExtent*int64(p.saturation)/int64(PropertyPercentMaximum))
	p.cutSaturationNeg = neutral - int32(negExtent*int64(p.saturation)/int64(PropertyPercentMaximum))

	p.rangeNeutral = (p.rangeMin + p.rangeMax) / 2
}

// transform maps one raw axis reading onto the configured output range: raw
// values inside the deadzone cutoffs yield exactly the configured neutral,
// values beyond the saturation cutoffs yield exactly the configured extreme,
// and values strictly between rescale linearly per sign.
func (p *axisProperties) transform(raw int32) int32 {
	if !p.transformEnabled {
		return raw
	}

	if raw >= element.AnalogNeutral {
		if raw <= p.cutDeadzonePos {
			return p.rangeNeutral
		}
		if raw >= p.cutSaturationPos {
			return p.rangeMax
		}
		span := int64(p.cutSaturationPos - p.cutDeadzonePos)
		return p.rangeNeutral + int32(int64(raw-p.cutDeadzonePos)*int64(p.rangeMax-p.rangeNeutral)/span)
	}

	if raw >= p.cutDeadzoneNeg {
		return p.rangeNeutral
	}
	if raw <= p.cutSaturationNeg {
		return p.rangeMin
	}
	span := int64(p.cutDeadzoneNeg - p.cutSaturationNeg)
	return p.rangeNeutral - int32(int64(p.cutDeadzoneNeg-raw)*int64(p.rangeNeutral-p.rangeMin)/span)
}

func validPercent(v uint32) bool {
	return v <= PropertyPercentMaximum
}
