package feed

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const compressFixture = "date,open,high,low,close,volume\n" +
	"2024-01-01,100,110,95,105,1200\n" +
	"2024-01-02,105,112,101,110,900\n"

func TestLoadXZFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv.xz")

	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(compressFixture))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	s, err := loader().Load(path)
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, 105.0, s[0].Close)
	assert.Equal(t, int64(900), s[1].Volume)
}

func TestLoadXZBadStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv.xz")
	require.NoError(t, os.WriteFile(path, []byte("not an xz stream"), 0o644))

	_, err := loader().Load(path)
	assert.Error(t, err)
}

func TestLoadZipArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	member, err := zw.Create("candles.csv")
	require.NoError(t, err)
	_, err = member.Write([]byte(compressFixture))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	s, err := loader().Load(path)
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, 100.0, s[0].Open)
}

func TestLoadZipWithoutCSVMember(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	member, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = member.Write([]byte("no candles here"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = loader().Load(path)
	assert.ErrorContains(t, err, "no .csv member")
}
