package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/milk9111/gravitylegacy/levels"
	"github.com/milk9111/gravitylegacy/walls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"level_0"}, &out))

	lvl, err := levels.Load("level_0")
	require.NoError(t, err)
	grid, err := lvl.SolidGrid()
	require.NoError(t, err)
	rects := walls.Compact(grid)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(rects)+1)
	assert.True(t, strings.HasPrefix(lines[0], "level_0: "))
}

func TestRunJSONAll(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-json", "-all"}, &out))

	var report map[string][]rectOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	for _, name := range levels.Names() {
		lvl, err := levels.Load(name)
		require.NoError(t, err)
		rows, ok := report[lvl.Name]
		require.True(t, ok, lvl.Name)

		grid, err := lvl.SolidGrid()
		require.NoError(t, err)
		var area float64
		for _, r := range rows {
			area += r.Width * r.Height
		}
		assert.InDelta(t, float64(len(grid.Cells()))*lvl.CellSize*lvl.CellSize, area, 1e-6)
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(nil, &out))
	assert.Error(t, run([]string{"no_such_level"}, &out))
	assert.Error(t, run([]string{"-bogus"}, &out))
}
