package physical

// sdlAxisMapping defines how a raw SDL joystick axis feeds the polled state.
type sdlAxisMapping struct {
	Index     int32
	Stick     int // State.Sticks slot when IsTrigger is false
	Trigger   int // State.Triggers slot when IsTrigger is true
	IsTrigger bool
	Invert    bool
	// For triggers: raw range. Some devices use -32768..32767, others 0..32767.
	RawMin int16
	RawMax int16
}

// sdlButtonMapping defines how a raw SDL button index maps to a physical
// button.
type sdlButtonMapping struct {
	Index  int32
	Target Button
}

// sdlDeviceMapping holds the complete translation for a specific device type.
type sdlDeviceMapping struct {
	Name    string
	Axes    []sdlAxisMapping
	Buttons []sdlButtonMapping
	HasHat  bool
}

var xboxSDLMapping = &sdlDeviceMapping{
	Name: "xbox",
	Axes: []sdlAxisMapping{
		{Index: 0, Stick: StickLeftX},
		{Index: 1, Stick: StickLeftY, Invert: true},
		{Index: 2, Stick: StickRightX},
		{Index: 3, Stick: StickRightY, Invert: true},
		{Index: 4, Trigger: TriggerLeft, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Trigger: TriggerRight, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []sdlButtonMapping{
		{Index: 0, Target: ButtonA},
		{Index: 1, Target: ButtonB},
		{Index: 2, Target: ButtonX},
		{Index: 3, Target: ButtonY},
		{Index: 4, Target: ButtonLB},
		{Index: 5, Target: ButtonRB},
		{Index: 6, Target: ButtonBack},
		{Index: 7, Target: ButtonStart},
		{Index: 8, Target: ButtonLeftStick},
		{Index: 9, Target: ButtonRightStick},
	},
	HasHat: true,
}

var playstationSDLMapping = &sdlDeviceMapping{
	Name: "playstation",
	Axes: []sdlAxisMapping{
		{Index: 0, Stick: StickLeftX},
		{Index: 1, Stick: StickLeftY, Invert: true},
		{Index: 2, Stick: StickRightX},
		{Index: 3, Stick: StickRightY, Invert: true},
		{Index: 4, Trigger: TriggerLeft, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Trigger: TriggerRight, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []sdlButtonMapping{
		{Index: 0, Target: ButtonA},     // Cross
		{Index: 1, Target: ButtonB},     // Circle
		{Index: 2, Target: ButtonX},     // Square
		{Index: 3, Target: ButtonY},     // Triangle
		{Index: 4, Target: ButtonBack},  // Share / Create
		{Index: 6, Target: ButtonStart}, // Options
		{Index: 7, Target: ButtonLeftStick},
		{Index: 8, Target: ButtonRightStick},
		{Index: 9, Target: ButtonLB},  // L1
		{Index: 10, Target: ButtonRB}, // R1
	},
	HasHat: true,
}

var genericSDLMapping = &sdlDeviceMapping{
	Name: "generic",
	Axes: []sdlAxisMapping{
		{Index: 0, Stick: StickLeftX},
		{Index: 1, Stick: StickLeftY, Invert: true},
		{Index: 2, Stick: StickRightX},
		{Index: 3, Stick: StickRightY, Invert: true},
		{Index: 4, Trigger: TriggerLeft, IsTrigger: true, RawMin: -32768, RawMax: 32767},
		{Index: 5, Trigger: TriggerRight, IsTrigger: true, RawMin: -32768, RawMax: 32767},
	},
	Buttons: []sdlButtonMapping{
		{Index: 0, Target: ButtonA},
		{Index: 1, Target: ButtonB},
		{Index: 2, Target: ButtonX},
		{Index: 3, Target: ButtonY},
		{Index: 4, Target: ButtonLB},
		{Index: 5, Target: ButtonRB},
		{Index: 6, Target: ButtonBack},
		{Index: 7, Target: ButtonStart},
		{Index: 8, Target: ButtonLeftStick},
		{Index: 9, Target: ButtonRightStick},
	},
	HasHat: true,
}

type sdlDeviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownSDLDevices = map[sdlDeviceKey]*sdlDeviceMapping{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: xboxSDLMapping, // Xbox 360
	{0x045E, 0x02FF}: xboxSDLMapping, // Xbox One
	{0x045E, 0x0B12}: xboxSDLMapping, // Xbox Series X|S
	{0x045E, 0x0B13}: xboxSDLMapping, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{0x054C, 0x0CE6}: playstationSDLMapping, // DualSense
	{0x054C, 0x09CC}: playstationSDLMapping, // DualShock 4 v2
	{0x054C, 0x05C4}: playstationSDLMapping, // DualShock 4 v1
}

// lookupSDLMapping returns the translation for a device identified by
// vendor/product ID, falling back to the generic layout.
func lookupSDLMapping(vendorID, productID uint16) *sdlDeviceMapping {
	if m, ok := knownSDLDevices[sdlDeviceKey{VendorID: vendorID, ProductID: productID}]; ok {
		return m
	}
	return genericSDLMapping
}

// normalizeTrigger converts a raw SDL trigger value to the 0..255 polled
// range.
func normalizeTrigger(raw int16, rawMin, rawMax int16) uint8 {
	if rawMax == rawMin {
		return 0
	}
	v := (int32(raw) - int32(rawMin)) * 255 / (int32(rawMax) - int32(rawMin))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
