package protocol

// BitField locates a packed value inside the payload
type BitField struct {
	Offset int   // Absolute payload byte offset
	Mask   uint8 // Bits belonging to the field
	Shift  uint  // Right shift applied after masking
}

// Extract returns the field value. ok is false when the payload is too
// short to contain the field's byte.
func (b BitField) Extract(payload []byte) (uint8, bool) {
	if b.Offset < 0 || b.Offset >= len(payload) {
		return 0, false
	}
	return (payload[b.Offset] & b.Mask) >> b.Shift, true
}

// Flag reports whether any of the field's bits are set
func (b BitField) Flag(payload []byte) (bool, bool) {
	v, ok := b.Extract(payload)
	return v != 0, ok
}

// Payload bit layout. SET and REPORT payloads share it.
var (
	PowerBits       = BitField{Offset: 4, Mask: 0b10000000, Shift: 7}
	ModeBits        = BitField{Offset: 4, Mask: 0b01110000, Shift: 4}
	TempSetBits     = BitField{Offset: 5, Mask: 0b11110000, Shift: 4}
	TempTableBits   = BitField{Offset: 7, Mask: 0b01000000}
	FanSpeed1Bits   = BitField{Offset: 18, Mask: 0b00001111}
	FanSpeed2Bits   = BitField{Offset: 4, Mask: 0b00000011}
	FanQuietBits    = BitField{Offset: 16, Mask: 0b00001000}
	FanTurboBits    = BitField{Offset: 6, Mask: 0b00000001}
	VSwingBits      = BitField{Offset: 8, Mask: 0b11110000, Shift: 4}
	HSwingBits      = BitField{Offset: 8, Mask: 0b00000111}
	DisplayModeBits = BitField{Offset: 9, Mask: 0b00110000, Shift: 4}
	DisplayOnBits   = BitField{Offset: 6, Mask: 0b00000010}
	DisplayFBits    = BitField{Offset: 7, Mask: 0b10000000}
	Plasma1Bits     = BitField{Offset: 6, Mask: 0b00000100}
	Plasma2Bits     = BitField{Offset: 0, Mask: 0b00000100}
	SleepBits       = BitField{Offset: 4, Mask: 0b00001000}
	XFanBits        = BitField{Offset: 6, Mask: 0b00001000}
	SaveBits        = BitField{Offset: 11, Mask: 0b01000000}
	BeeperBits      = BitField{Offset: 40, Mask: 0b00000001}
	IndoorTempBits  = BitField{Offset: 42, Mask: 0b11111111}
)

// Indoor temperature encoding. The payload stores whole degrees biased by
// IndoorTempOffset. IndoorTempDivisor appears in the unit's layout table but
// this field does not use it.
const (
	IndoorTempOffset  = 16
	IndoorTempDivisor = 2.0
)

// Decoded field names, in report order
const (
	FieldPower           = "power_bit_raw"
	FieldMode            = "mode"
	FieldTargetTemp      = "target_temperature"
	FieldTempSetIndex    = "temset_index"
	FieldTempTableFlag   = "temrec_flag"
	FieldFanSpeed1       = "fan_spd1"
	FieldFanSpeed2       = "fan_spd2"
	FieldFanQuiet        = "fan_quiet"
	FieldFanTurbo        = "fan_turbo"
	FieldVSwingIndex     = "vertical_swing_index"
	FieldVSwing          = "vertical_swing"
	FieldHSwingIndex     = "horizontal_swing_index"
	FieldHSwing          = "horizontal_swing"
	FieldDisplayMode     = "display_mode"
	FieldDisplayOn       = "display_on"
	FieldDisplayUnitF    = "display_unit_F"
	FieldPlasma          = "plasma"
	FieldSleep           = "sleep"
	FieldXFan            = "xfan"
	FieldSave            = "save"
	FieldBeeperRaw       = "beeper_raw"
	FieldBeeperEffective = "beeper_effective"
	FieldIndoorTemp      = "ac_indoor_temperature"
)

// interpreter turns an extracted field value into its reported value
type interpreter func(v uint8, payload []byte, dir Direction) any

// fieldSpec is one row of the payload layout table
type fieldSpec struct {
	name      string
	bits      BitField
	alt       *BitField // Read when bits lies past the payload
	interpret interpreter
	label     bool // Only emitted when labels are requested
}

// payloadLayout drives DecodePayload. Row order is the report order.
var payloadLayout = []fieldSpec{
	{name: FieldPower, bits: PowerBits, interpret: asInt},
	{name: FieldMode, bits: ModeBits, interpret: asMode},
	{name: FieldTargetTemp, bits: TempSetBits, interpret: asTargetTemp},
	{name: FieldTempSetIndex, bits: TempSetBits, interpret: asInt},
	{name: FieldTempTableFlag, bits: TempTableBits, interpret: asFlag},
	{name: FieldFanSpeed1, bits: FanSpeed1Bits, interpret: asInt},
	{name: FieldFanSpeed2, bits: FanSpeed2Bits, interpret: asInt},
	{name: FieldFanQuiet, bits: FanQuietBits, interpret: asFlag},
	{name: FieldFanTurbo, bits: FanTurboBits, interpret: asFlag},
	{name: FieldVSwingIndex, bits: VSwingBits, interpret: asInt},
	{name: FieldVSwing, bits: VSwingBits, interpret: asVSwing, label: true},
	{name: FieldHSwingIndex, bits: HSwingBits, interpret: asInt},
	{name: FieldHSwing, bits: HSwingBits, interpret: asHSwing, label: true},
	{name: FieldDisplayMode, bits: DisplayModeBits, interpret: asDisplayMode},
	{name: FieldDisplayOn, bits: DisplayOnBits, interpret: asFlag},
	{name: FieldDisplayUnitF, bits: DisplayFBits, interpret: asFlag},
	{name: FieldPlasma, bits: Plasma1Bits, alt: &Plasma2Bits, interpret: asPlasma},
	{name: FieldSleep, bits: SleepBits, interpret: asFlag},
	{name: FieldXFan, bits: XFanBits, interpret: asFlag},
	{name: FieldSave, bits: SaveBits, interpret: asFlag},
	{name: FieldBeeperRaw, bits: BeeperBits, interpret: asFlag},
	{name: FieldBeeperEffective, bits: BeeperBits, interpret: asBeeperNote},
	{name: FieldIndoorTemp, bits: IndoorTempBits, interpret: asIndoorTemp},
}

func asInt(v uint8, _ []byte, _ Direction) any {
	return int(v)
}

func asFlag(v uint8, _ []byte, _ Direction) any {
	if v != 0 {
		return 1
	}
	return 0
}

func asMode(v uint8, _ []byte, _ Direction) any {
	return ModeName(v)
}

func asDisplayMode(v uint8, _ []byte, _ Direction) any {
	return DisplayModeName(v)
}

func asVSwing(v uint8, _ []byte, _ Direction) any {
	return VerticalSwingName(v)
}

func asHSwing(v uint8, _ []byte, _ Direction) any {
	return HorizontalSwingName(v)
}

// asTargetTemp needs the table select bit as well as the index
func asTargetTemp(v uint8, payload []byte, _ Direction) any {
	temrec, ok := TempTableBits.Flag(payload)
	if !ok {
		return nil
	}
	temp, ok := TargetTemperature(TempTableFor(temrec), int(v))
	if !ok {
		return nil
	}
	return temp
}

// asPlasma is set when either plasma location carries the bit
func asPlasma(v uint8, payload []byte, _ Direction) any {
	second, _ := Plasma2Bits.Flag(payload)
	if v != 0 || second {
		return 1
	}
	return 0
}

func asBeeperNote(_ uint8, _ []byte, dir Direction) any {
	return BeeperNote(dir)
}

func asIndoorTemp(v uint8, _ []byte, _ Direction) any {
	return float64(int(v) - IndoorTempOffset)
}
