package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/encodeous/hopsim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTopology(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInspect(t *testing.T) {
	path := writeTopology(t, "net.txt", "A!B!n:0\nB!A!\n")
	out, err := execute(t, "inspect", path)
	assert.NoError(t, err)
	assert.Equal(t, "  A\n    N: B\n    R: n:0\n  B\n    N: A\n    R: \n", out)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	path := writeTopology(t, "net.txt", "A!B!n:zero\n")
	_, err := execute(t, "verify", path)
	assert.ErrorIs(t, err, state.ErrMalformed)
}

func TestVerify(t *testing.T) {
	path := writeTopology(t, "net.txt", "A!B!n:0\n")
	out, err := execute(t, "verify", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "Topology is valid")
	assert.Contains(t, out, "address: n")
}

func TestConvert(t *testing.T) {
	src := writeTopology(t, "net.txt", "A!B!n:0\nB!A!\n")
	dst := filepath.Join(t.TempDir(), "net.yaml")

	_, err := execute(t, "convert", src, dst)
	require.NoError(t, err)

	fromText, err := state.ReadTopology(src)
	require.NoError(t, err)
	fromYaml, err := state.ReadTopology(dst)
	require.NoError(t, err)
	assert.Equal(t, fromText, fromYaml)

	_, err = execute(t, "convert", src, dst)
	assert.ErrorContains(t, err, "already exists")
}
