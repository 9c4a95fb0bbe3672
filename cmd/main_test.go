package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cardforge/internal/config"
	"cardforge/internal/luhn"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	missing := filepath.Join(t.TempDir(), "none.yml")

	var out bytes.Buffer
	cmd := newRootCommand(&config.Config{})
	cmd.SetArgs(append(args, "-c", missing))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "", "generate", "-n", "amex", "-q", "3", "--cvv", "--exp-month", "7", "--exp-year", "2099")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		fields := strings.Split(line, "|")
		require.Len(t, fields, 3)
		require.Len(t, fields[0], 15)
		require.True(t, luhn.IsValid(fields[0]))
		require.Equal(t, "07/99", fields[1])
		require.Len(t, fields[2], 3)
	}
}

func TestGenerateCommand_Errors(t *testing.T) {
	_, err := run(t, "", "generate", "-n", "jcb")
	require.ErrorContains(t, err, "unknown network")

	_, err = run(t, "", "generate", "-f", "yaml")
	require.ErrorContains(t, err, "unsupported export format")

	_, err = run(t, "", "generate", "-q", "1001")
	require.ErrorContains(t, err, "quantity must not exceed 1000")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "", "validate", "4111 1111 1111 1111")
	require.NoError(t, err)
	require.JSONEq(t,
		`{"number":"4111 1111 1111 1111","valid":true,"luhn_valid":true,"network":"Visa","length":16,"reason":"valid"}`,
		out)

	out, err = run(t, "4111111111111111\n\n4111111111111112\n", "validate")
	require.ErrorContains(t, err, "1 of 2 numbers are invalid")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"reason":"luhn check failed"`)
}

func TestNetworksCommand(t *testing.T) {
	out, err := run(t, "", "networks")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	require.True(t, strings.HasPrefix(lines[0], "random"))
}

func TestNetworksCommand_Verbose(t *testing.T) {
	out, err := run(t, "", "networks", "--verbose")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.True(t, strings.HasPrefix(lines[1], "visa"))
	require.Contains(t, lines[1], "13,16,19")
	require.Contains(t, lines[3], "34,37")
	require.NotContains(t, out, "random")
}

func TestCurrenciesCommand(t *testing.T) {
	out, err := run(t, "", "currencies")
	require.NoError(t, err)
	require.Contains(t, out, "USD")
	require.Contains(t, out, "United States Dollar")
}
