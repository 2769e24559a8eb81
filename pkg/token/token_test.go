package token

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Item
		wantErr bool
	}{
		{name: "upper case", input: "PLANT", want: PLANT},
		{name: "lower case with spaces", input: "  uni ", want: UNI},
		{name: "quote token", input: "busd", want: BUSD},
		{name: "unknown", input: "DOGE", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectable(t *testing.T) {
	items := Selectable()
	assert.Equal(t, []Item{UNI, YGG, AXS, PLANT}, items)

	// callers must not be able to mutate the registry order
	items[0] = BUSD
	assert.Equal(t, UNI, Selectable()[0])

	assert.False(t, IsSelectable(BUSD))
	assert.True(t, IsSelectable(AXS))
}

func TestLookup(t *testing.T) {
	tok, err := Lookup(PLANT)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1d59AC95be8becA40C295Ea049ad31C19959Ef19"), tok.Address)

	_, err = Lookup(Item("NOPE"))
	assert.Error(t, err)

	assert.Equal(t, common.Address{}, Address(Item("NOPE")))
	assert.Len(t, All(), 5)
	assert.Equal(t, BUSD, All()[0].Symbol)
}
