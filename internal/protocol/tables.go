package protocol

import "fmt"

// TempTable selects one of the two target temperature tables
type TempTable int

const (
	TempTableA TempTable = iota // temrec bit clear
	TempTableB                  // temrec bit set
)

// targetTemps holds the target temperatures in Celsius, indexed by the 4-bit
// temperature select field. Table B has no valid entry at 4, 9 and 14; those
// slots are zero on purpose.
var targetTemps = [2][16]float64{
	TempTableA: {
		15.5555555555556, 16.6666666666667, 17.7777777778, 18.8888888889,
		20, 20.5555555556, 21.6666666667, 22.7777777778,
		23.8888888889, 25, 25.5555555556, 26.6666666666667,
		27.7777777778, 28.8888888889, 30, 30.5555555556,
	},
	TempTableB: {
		16.1111111111111, 17.2222222222222, 18.3333333333333, 19.4444444444444,
		0, 21.1111111111, 22.2222222222222, 23.3333333333,
		24.4444444444, 0, 26.1111111111111, 27.2222222222222,
		28.3333333333, 29.4444444444, 0, 31.1111111111111,
	},
}

// TempTableFor maps the temrec flag to a table
func TempTableFor(temrec bool) TempTable {
	if temrec {
		return TempTableB
	}
	return TempTableA
}

// TargetTemperature looks up a target temperature. ok is false when the
// table or index is out of range.
func TargetTemperature(table TempTable, index int) (float64, bool) {
	if table < TempTableA || table > TempTableB {
		return 0, false
	}
	if index < 0 || index >= len(targetTemps[table]) {
		return 0, false
	}
	return targetTemps[table][index], true
}

// Mode codes
const (
	ModeAuto = 0
	ModeCool = 1
	ModeDry  = 2
	ModeFan  = 3
	ModeHeat = 4
)

var modeNames = map[uint8]string{
	ModeAuto: "AUTO",
	ModeCool: "COOL",
	ModeDry:  "DRY",
	ModeFan:  "FAN",
	ModeHeat: "HEAT",
}

// ModeName returns the mode name, or UNKNOWN(code) for codes outside the table
func ModeName(code uint8) string {
	return lookupName(modeNames, code)
}

// Display modes
const (
	DisplayAuto = 0
	DisplaySet  = 1
	DisplayAct  = 2
	DisplayOut  = 3
)

var displayModeNames = map[uint8]string{
	DisplayAuto: "AUTO",
	DisplaySet:  "SET",
	DisplayAct:  "ACT",
	DisplayOut:  "OUT",
}

// DisplayModeName returns the display mode name, or UNKNOWN(code)
func DisplayModeName(code uint8) string {
	return lookupName(displayModeNames, code)
}

// Swing position labels as the unit firmware numbers them
var verticalSwingNames = map[uint8]string{
	0:  "OFF",
	1:  "Swing - Full",
	2:  "Swing - Down",
	3:  "Swing - Mid-Down",
	4:  "Swing - Middle",
	5:  "Swing - Mid-Up",
	6:  "Swing - Up",
	7:  "Constant - Down",
	8:  "Constant - Mid-Down",
	9:  "Constant - Middle",
	10: "Constant - Mid-Up",
	11: "Constant - Up",
}

var horizontalSwingNames = map[uint8]string{
	0: "OFF",
	1: "Swing - Full",
	2: "Constant - Left",
	3: "Constant - Mid-Left",
	4: "Constant - Middle",
	5: "Constant - Mid-Right",
	6: "Constant - Right",
}

// VerticalSwingName returns the vertical swing label, or UNKNOWN(code)
func VerticalSwingName(code uint8) string {
	return lookupName(verticalSwingNames, code)
}

// HorizontalSwingName returns the horizontal swing label, or UNKNOWN(code)
func HorizontalSwingName(code uint8) string {
	return lookupName(horizontalSwingNames, code)
}

func lookupName(names map[uint8]string, code uint8) string {
	if name, ok := names[code]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", code)
}

// Beeper notes. The gateway firmware sets the beeper bit in SET frames when
// the beeper is switched off, while REPORT frames set it when it is on.
const (
	BeeperNoteSet    = "OFF if raw=1 (firmware sets mask when beeper_state==false)"
	BeeperNoteReport = "ON if raw=1 (reported state)"
)

// BeeperNote returns the interpretation of the raw beeper bit for a direction
func BeeperNote(dir Direction) string {
	if dir == DirectionSet {
		return BeeperNoteSet
	}
	return BeeperNoteReport
}
