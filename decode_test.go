package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunDecode_Text(t *testing.T) {
	var buf bytes.Buffer
	err := runDecode(&buf, []string{`]d20109506000134352<GS>10LOT1\x1d17271231`}, &decodeFlags{now: "2026-10-15"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "GS1-DataMatrix")
	assert.Contains(t, out, "]d2")
	assert.Contains(t, out, "(10) BATCH/LOT:")
	assert.Contains(t, out, "LOT1")
	assert.Contains(t, out, "2027-12-31")
	assert.NotContains(t, out, "Warning:")
}

func TestRunDecode_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := runDecode(&buf, []string{"4901234567894", "(01)09506000134353"}, &decodeFlags{output: "json", now: "2026-10-15"})
	require.NoError(t, err)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "EAN-13", results[0]["barcodeType"])
	assert.Equal(t, "04901234567894", results[0]["gtin"])
	assert.Equal(t, false, results[1]["success"])
}

func TestRunDecode_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := runDecode(&buf, []string{"(01)09506000134352(17)250100"}, &decodeFlags{output: "yaml", now: "2026-10-15"})
	require.NoError(t, err)

	var results []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "2025-01-31", results[0]["expiryDate"])
	assert.Equal(t, true, results[0]["isExpired"])
}

func TestRunDecode_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, runDecode(&buf, []string{"4901234567894"}, &decodeFlags{output: "xml"}))
	assert.Error(t, runDecode(&buf, []string{"4901234567894"}, &decodeFlags{now: "15/10/2026"}))
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "gs1scan version"))
}
