package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaffoldingLevel_NarrowsTo(t *testing.T) {
	tests := []struct {
		name string
		from ScaffoldingLevel
		to   ScaffoldingLevel
		want bool
	}{
		{"high to med", ScaffoldingHigh, ScaffoldingMed, true},
		{"med to low", ScaffoldingMed, ScaffoldingLow, true},
		{"high to low", ScaffoldingHigh, ScaffoldingLow, true},
		{"same level", ScaffoldingMed, ScaffoldingMed, false},
		{"low to high widens", ScaffoldingLow, ScaffoldingHigh, false},
		{"med to high widens", ScaffoldingMed, ScaffoldingHigh, false},
		{"unknown from", ScaffoldingLevel("MAX"), ScaffoldingLow, false},
		{"unknown to", ScaffoldingHigh, ScaffoldingLevel(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.NarrowsTo(tt.to))
		})
	}
}

func TestEventType_IsHintEvent(t *testing.T) {
	assert.True(t, EventOpenHint.IsHintEvent())
	assert.True(t, EventAdvanceHint.IsHintEvent())
	assert.False(t, EventSelectOption.IsHintEvent())
	assert.False(t, EventSignalUncertainty.IsHintEvent())
	assert.False(t, EventEndTurn.IsHintEvent())
}

func TestValidEventTypes_CoversAllConstants(t *testing.T) {
	for _, et := range []EventType{
		EventSelectOption, EventFillSlot, EventSignalUncertainty,
		EventOpenHint, EventAdvanceHint, EventToggleInputMode,
		EventSystemReprompt, EventNarrowScaffolding, EventShowModel,
		EventClarifyStructure, EventEndTurn,
	} {
		assert.True(t, ValidEventTypes[et], "missing %s", et)
	}
	assert.Len(t, ValidEventTypes, 11)
	assert.False(t, ValidEventTypes[EventType("UNDO")])
}
