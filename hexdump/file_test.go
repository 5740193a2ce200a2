package hexdump

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpFile(t *testing.T) {
	data := pattern(1000)
	filename := filepath.Join(t.TempDir(), "data.bin")
	err := os.WriteFile(filename, data, 0600)
	require.Nil(t, err)

	var buf bytes.Buffer
	err = DumpFile(filename, &buf)
	require.Nil(t, err)
	checkDump(t, data, buf.String())
}

func TestDumpFileMissing(t *testing.T) {
	var buf bytes.Buffer
	err := DumpFile(filepath.Join(t.TempDir(), "nonexistent"), &buf)
	require.NotNil(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, "", buf.String())
}

func TestDumpFileEmpty(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.bin")
	err := os.WriteFile(filename, []byte{}, 0600)
	require.Nil(t, err)

	var buf bytes.Buffer
	err = DumpFile(filename, &buf)
	require.Nil(t, err)
	require.Equal(t, "", buf.String())
}
