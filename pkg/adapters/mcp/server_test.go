package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/chempath"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer() *Server {
	return NewServer(chempath.New(chempath.WithMaxVisited(2000)), nil)
}

func TestFindPath_Tool(t *testing.T) {
	s := newServer()
	resp, err := s.handleFindPath(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"start_group":    "Alkyl Bromide",
		"start_carbons":  float64(2),
		"target_group":   "Alkane",
		"target_carbons": float64(2),
	})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, []string{"C2H5Br", "C2H4", "C2H6"}, resp.Formulas)
	assert.Equal(t, []string{"dehydrohalogenation", "hydrogenation_alkene"}, resp.Rules)
	assert.Len(t, resp.Reactions, 2)
	assert.Empty(t, resp.Message)
}

func TestFindPath_Tool_NoPath(t *testing.T) {
	s := newServer()
	resp, err := s.handleFindPath(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"start_group":    "carboxylate salt",
		"start_carbons":  float64(1),
		"target_group":   "alkane",
		"target_carbons": float64(1),
	})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Equal(t, "No path found!", resp.Message)
	assert.Empty(t, resp.Formulas)
}

func TestFindPath_Tool_InvalidInput(t *testing.T) {
	s := newServer()
	tests := []struct {
		name string
		args map[string]interface{}
		side domain.Side
	}{
		{"fractional carbons", map[string]interface{}{"start_group": "alkane", "start_carbons": 2.5, "target_group": "alkane", "target_carbons": float64(2)}, domain.SideStart},
		{"below minimum", map[string]interface{}{"start_group": "alkane", "start_carbons": float64(2), "target_group": "alkyne", "target_carbons": float64(1)}, domain.SideTarget},
		{"unknown group", map[string]interface{}{"start_group": "ether", "start_carbons": float64(2), "target_group": "alkane", "target_carbons": float64(2)}, domain.SideStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleFindPath(context.Background(), mcp.CallToolRequest{}, tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.side, ve.Side)
		})
	}
}

func TestDecodeQuery(t *testing.T) {
	q, err := decodeQuery(map[string]interface{}{
		"start_group": "alkene", "start_carbons": "3",
		"target_group": "alcohol", "target_carbons": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, chempath.Query{StartGroup: "alkene", StartCarbons: 3, TargetGroup: "alcohol", TargetCarbons: 3}, q)

	_, err = decodeQuery(map[string]interface{}{"start_group": "alkene", "start_carbons": "three"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = decodeQuery(map[string]interface{}{"start_group": "alkene", "start_carbons": 2, "extra": true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecodeQuery_RejectsNonNumericCarbons(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		side domain.Side
	}{
		{"boolean start", map[string]interface{}{"start_group": "alkane", "start_carbons": true, "target_group": "alkane", "target_carbons": true}, domain.SideStart},
		{"boolean target", map[string]interface{}{"start_group": "alkane", "start_carbons": float64(1), "target_group": "alkane", "target_carbons": false}, domain.SideTarget},
		{"empty string", map[string]interface{}{"start_group": "alkane", "start_carbons": "", "target_group": "alkane", "target_carbons": float64(1)}, domain.SideStart},
		{"missing", map[string]interface{}{"start_group": "alkane", "start_carbons": float64(1), "target_group": "alkane"}, domain.SideTarget},
		{"list", map[string]interface{}{"start_group": "alkane", "start_carbons": []interface{}{float64(1)}, "target_group": "alkane", "target_carbons": float64(1)}, domain.SideStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeQuery(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.side, ve.Side)
			assert.Equal(t, "carbons", ve.Field)
		})
	}

	_, err := decodeQuery(map[string]interface{}{"start_group": 3, "start_carbons": float64(1), "target_group": "alkane", "target_carbons": float64(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "group must be a string")
}

func TestListRules_Tool(t *testing.T) {
	s := newServer()
	res, err := s.handleListRules(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	var infos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &infos))
	assert.Len(t, infos, 19)
}

func TestRulesResource(t *testing.T) {
	s := newServer()
	contents, err := s.readRules(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	trc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, rulesURI, trc.URI)
	assert.Contains(t, trc.Text, "wurtz_coupling")
}
