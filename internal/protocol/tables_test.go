package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetTemperature(t *testing.T) {
	tests := []struct {
		name   string
		table  TempTable
		index  int
		want   float64
		wantOK bool
	}{
		{name: "A first", table: TempTableA, index: 0, want: 15.5555555555556, wantOK: true},
		{name: "A whole degree", table: TempTableA, index: 9, want: 25, wantOK: true},
		{name: "A last", table: TempTableA, index: 15, want: 30.5555555556, wantOK: true},
		{name: "B first", table: TempTableB, index: 0, want: 16.1111111111111, wantOK: true},
		{name: "B reserved 4", table: TempTableB, index: 4, want: 0, wantOK: true},
		{name: "B reserved 9", table: TempTableB, index: 9, want: 0, wantOK: true},
		{name: "B reserved 14", table: TempTableB, index: 14, want: 0, wantOK: true},
		{name: "index too large", table: TempTableA, index: 16, wantOK: false},
		{name: "negative index", table: TempTableB, index: -1, wantOK: false},
		{name: "bad table", table: TempTable(2), index: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TargetTemperature(tt.table, tt.index)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTempTableFor(t *testing.T) {
	assert.Equal(t, TempTableA, TempTableFor(false))
	assert.Equal(t, TempTableB, TempTableFor(true))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "AUTO", ModeName(ModeAuto))
	assert.Equal(t, "DRY", ModeName(ModeDry))
	assert.Equal(t, "UNKNOWN(5)", ModeName(5))

	assert.Equal(t, "OUT", DisplayModeName(DisplayOut))

	assert.Equal(t, "Swing - Full", VerticalSwingName(1))
	assert.Equal(t, "UNKNOWN(12)", VerticalSwingName(12))
	assert.Equal(t, "Constant - Left", HorizontalSwingName(2))
	assert.Equal(t, "UNKNOWN(7)", HorizontalSwingName(7))
}

func TestBeeperNote(t *testing.T) {
	assert.Equal(t, BeeperNoteSet, BeeperNote(DirectionSet))
	assert.Equal(t, BeeperNoteReport, BeeperNote(DirectionReport))
}
