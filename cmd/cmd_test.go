package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSources creates the three source files and points the config at them.
func writeSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"ManufacturerList.csv": "1167234,Apple,phone,\n2390112,Dell,laptop,\n9034210,Dell,tower,damaged\n3001265,Samsung,phone\n",
		"PriceList.csv":        "1167234,534\n2390112,799\n9034210,345\n3001265,1200\n",
		"ServiceDatesList.csv": "1167234,7/1/2030\n2390112,7/2/2030\n9034210,5/27/2020\n3001265,12/1/2023\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	t.Setenv("SOURCE_MANUFACTURERS", filepath.Join(dir, "ManufacturerList.csv"))
	t.Setenv("SOURCE_PRICES", filepath.Join(dir, "PriceList.csv"))
	t.Setenv("SOURCE_SERVICE_DATES", filepath.Join(dir, "ServiceDatesList.csv"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	dir := writeSources(t)
	outDir := filepath.Join(dir, "outputReports")
	metricsFile := filepath.Join(dir, "report.prom")
	t.Setenv("REPORT_METRICS_FILE", metricsFile)

	out, err := execute(t, "", "report", "--as-of", "6/15/2025", "--out", outDir, "--format", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "FullInventory")
	assert.Contains(t, out, "DamagedInventory")
	for _, name := range []string{"FullInventory.csv", "phoneInventory.csv", "laptopInventory.csv", "towerInventory.csv", "PastServiceDateInventory.csv", "DamagedInventory.csv"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	assert.FileExists(t, metricsFile)

	data, err := os.ReadFile(filepath.Join(outDir, "PastServiceDateInventory.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "9034210,"))
	assert.True(t, strings.HasPrefix(lines[2], "3001265,"))
}

func TestReportCommand_BadAsOf(t *testing.T) {
	writeSources(t)
	_, err := execute(t, "", "report", "--as-of", "2025-06-15", "--out", t.TempDir())
	assert.ErrorContains(t, err, "invalid --as-of")
}

func TestReportCommand_LoadFailure(t *testing.T) {
	dir := writeSources(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "PriceList.csv"), []byte("0000000,1\n"), 0o644))

	outDir := filepath.Join(dir, "never")
	_, err := execute(t, "", "report", "--as-of", "6/15/2025", "--out", outDir)
	assert.Error(t, err)
	assert.NoDirExists(t, outDir)
}

func TestQueryCommand(t *testing.T) {
	writeSources(t)

	out, err := execute(t, "apple phone\ndell\nq\n", "query", "--as-of", "6/15/2025")
	require.NoError(t, err)

	assert.Contains(t, out, "Your item is: 1167234, Apple, phone, $534.0")
	// Samsung's phone is past its service date.
	assert.NotContains(t, out, "3001265")
	assert.Contains(t, out, "Invalid input format.")
}
