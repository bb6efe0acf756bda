package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/chempath/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// Point at a file that never exists so a stray chempath.yaml cannot leak in.
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestFind_Text(t *testing.T) {
	out, err := run(t, "find", "alkyl_bromide", "2", "alkane", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"C2H5Br -> C2H4 -> C2H6\n"+
			"1. C2H5Br + NaOH(alc) -> C2H4 + H2O + NaBr\n"+
			"2. C2H4 + H2 -[Ni / 180 - 200°C]-> C2H6\n",
		out)
}

func TestFind_NoPath(t *testing.T) {
	out, err := run(t, "find", "carboxylate salt", "1", "alkane", "1")
	require.NoError(t, err)
	assert.Equal(t, "No path found!\n", out)
}

func TestFind_JSON(t *testing.T) {
	out, err := run(t, "find", "alkane", "1", "carboxylic_acid", "1", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Found bool `json:"found"`
		Path  struct {
			Steps []struct {
				Rule string `json:"rule"`
			} `json:"steps"`
		} `json:"path"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Found)
	require.Len(t, res.Path.Steps, 1)
	assert.Equal(t, "alkane_to_carboxylic", res.Path.Steps[0].Rule)
}

func TestFind_OtherFormats(t *testing.T) {
	out, err := run(t, "find", "alkene", "2", "alkane", "2", "--format", "markdown", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "# C₂H₄ → C₂H₆")

	out, err = run(t, "find", "alkene", "2", "alkane", "2", "-f", "mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, "class n1 target;")

	_, err = run(t, "find", "alkene", "2", "alkane", "2", "-f", "yaml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestFind_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"fractional", []string{"alkane", "2.5", "alkane", "2"}, "start: carbons: carbon count must be an integer"},
		{"below minimum", []string{"alkane", "2", "alkyne", "1"}, "target: Alkyne requires at least 2 carbon(s), got 1"},
		{"unknown group", []string{"ketone", "3", "alkane", "2"}, "start: group"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"find"}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, exitError, exitCode(err))
		})
	}

	_, err := run(t, "find", "alkane", "1")
	assert.Error(t, err, "needs four arguments")
}

func TestFind_SearchLimit(t *testing.T) {
	_, err := run(t, "find", "alkane", "1", "alkane", "999", "--max-visited", "25")
	require.ErrorIs(t, err, domain.ErrSearchLimit)
	assert.Equal(t, exitSearchLimit, exitCode(err))
}

func TestRulesAndGroups(t *testing.T) {
	out, err := run(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. halogenation_alkane")
	assert.Contains(t, out, "19. dibromo_to_alkyne")
	assert.Contains(t, out, "requires c > 1")

	out, err = run(t, "rules", "-f", "json")
	require.NoError(t, err)
	var infos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, 19)

	out, err = run(t, "groups")
	require.NoError(t, err)
	assert.Contains(t, out, "Carboxylic Acid")
	assert.Contains(t, out, "alkyl_bromide")
}

func TestGraph(t *testing.T) {
	out, err := run(t, "graph", "alcohol", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `n0(("CH3-OH`)
	assert.Contains(t, out, "oxidation_alcohol")

	out, err = run(t, "graph", "alcohol", "1", "--to", "carboxylate_salt")
	require.NoError(t, err)
	assert.Contains(t, out, "class n3 target;")

	out, err = run(t, "graph", "alkane", "1", "--limit", "3", "-f", "json")
	require.NoError(t, err)
	var g struct {
		Nodes []any `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.Len(t, g.Nodes, 3)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chempath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  max_visited: 5\ncache:\n  backend: none\n"), 0644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"find", "alkane", "1", "alkane", "999", "--config", path})
	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrSearchLimit)

	cmd = newRootCmd()
	cmd.SetArgs([]string{"version", "--config", path, "--log-level", "loud"})
	assert.Error(t, cmd.Execute())
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chempath version 0.1.0")
}
