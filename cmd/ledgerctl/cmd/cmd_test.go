package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tenantID, exportPeriod, exportYear, exportOut = "", "", 0, ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReportNames_Sorted(t *testing.T) {
	names := reportNames()
	require.Len(t, names, len(exporters))
	assert.Equal(t, "balance-sheet", names[0])
	assert.Contains(t, names, "stock-valuation")
	assert.IsNonDecreasing(t, names)
}

func TestExport_RejectsUnknownReport(t *testing.T) {
	_, err := run(t, "export", "cash-flow", "--tenant", "t-1", "--out", "x.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestExport_RequiresTenant(t *testing.T) {
	_, err := run(t, "export", "trial-balance", "--period", "2024-03", "--out", "x.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tenant")
}

func TestExport_AgingNeedsYear(t *testing.T) {
	_, err := run(t, "export", "payable-aging", "--tenant", "t-1", "--out", "x.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--year")
}

func TestExport_ReportNeedsPeriod(t *testing.T) {
	_, err := run(t, "export", "balance-sheet", "--tenant", "t-1", "--out", "x.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--period")
}

func TestMigrate_RejectsUnknownDirection(t *testing.T) {
	_, err := run(t, "migrate", "sideways")
	require.Error(t, err)
}

func TestVerifyPostings_RequiresTenant(t *testing.T) {
	_, err := run(t, "verify-postings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tenant")
}
