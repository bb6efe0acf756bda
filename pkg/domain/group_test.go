package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroup(t *testing.T) {
	tests := []struct {
		in   string
		want FunctionalGroup
	}{
		{"Alkane", Alkane},
		{"alkene", Alkene},
		{"ALKYNE", Alkyne},
		{"Alkyl Bromide", AlkylBromide},
		{"alkyl_bromide", AlkylBromide},
		{"AlkylBromide", AlkylBromide},
		{"carboxylate-salt", CarboxylateSalt},
		{"Dibromo Alkane", DibromoAlkane},
		{" Alcohol ", Alcohol},
		{"aldehyde", Aldehyde},
		{"Carboxylic Acid", CarboxylicAcid},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGroup(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGroup_Unknown(t *testing.T) {
	for _, in := range []string{"", "ketone", "alk ane bromide"} {
		_, err := ParseGroup(in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", in)
	}
}

func TestGroups(t *testing.T) {
	gs := Groups()
	require.Len(t, gs, 9)
	assert.Equal(t, Alkane, gs[0])
	assert.Equal(t, CarboxylicAcid, gs[8])

	mins := map[FunctionalGroup]int{
		Alkane: 1, Alkene: 2, Alkyne: 2, Alcohol: 1, Aldehyde: 1,
		CarboxylicAcid: 1, AlkylBromide: 1, CarboxylateSalt: 1, DibromoAlkane: 2,
	}
	for _, g := range gs {
		assert.Equal(t, mins[g], g.MinCarbons(), g.String())

		// Display names round-trip through the parser.
		back, err := ParseGroup(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, back)
	}
}

func TestFunctionalGroupJSON(t *testing.T) {
	data, err := json.Marshal(map[string]FunctionalGroup{"g": CarboxylateSalt})
	require.NoError(t, err)
	assert.JSONEq(t, `{"g":"Carboxylate Salt"}`, string(data))

	var out map[string]FunctionalGroup
	require.NoError(t, json.Unmarshal([]byte(`{"g":"dibromo_alkane"}`), &out))
	assert.Equal(t, DibromoAlkane, out["g"])

	_, err = json.Marshal(FunctionalGroup(99))
	assert.Error(t, err)
	assert.Equal(t, "FunctionalGroup(99)", FunctionalGroup(99).String())
}
