package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagwriter/core/engine"
)

// fakeEngine records calls and plays back canned responses.
type fakeEngine struct {
	calls [][]string
	out   string
	err   error
}

func (f *fakeEngine) Execute(args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return f.out, f.err
}

func tempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("not really an image"), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	eng := &fakeEngine{out: `[{"IPTC:Headline": "Storm damage", "SourceFile": "x.jpg"}]`}
	m := NewManager(eng)
	path := tempImage(t, "x.jpg")

	ok, err := m.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Storm damage", m.GetField(FieldHeadline, ""))
	assert.Equal(t, "fallback", m.GetField(FieldCredit, "fallback"))

	require.Len(t, eng.calls, 1)
	assert.Equal(t, []string{"-j", path}, eng.calls[0])
}

func TestLoadFromFileTIFFFlags(t *testing.T) {
	eng := &fakeEngine{out: `[]`}
	m := NewManager(eng)
	path := tempImage(t, "scan.tif")

	ok, err := m.LoadFromFile(path)
	require.NoError(t, err)
	assert.False(t, ok, "empty engine result means no metadata")
	require.Len(t, eng.calls, 1)
	assert.Equal(t, []string{"-j", "-m", "-ignoreMinorErrors", path}, eng.calls[0])
}

func TestLoadFromFileMissing(t *testing.T) {
	m := NewManager(&fakeEngine{})
	_, err := m.LoadFromFile(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestLoadFromFileUnsupported(t *testing.T) {
	m := NewManager(&fakeEngine{})
	path := tempImage(t, "doc.pdf")
	_, err := m.LoadFromFile(path)
	assert.ErrorContains(t, err, "unsupported")
}

func TestLoadFromFileEngineUnavailableFallsBack(t *testing.T) {
	// With the engine down, the local EXIF preview answers instead.
	// The temp file has no EXIF block, so the result is simply empty.
	eng := &fakeEngine{err: engine.ErrUnavailable}
	m := NewManager(eng)
	path := tempImage(t, "x.jpg")

	ok, err := m.LoadFromFile(path)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, m.Record())
}

func TestSaveToFile(t *testing.T) {
	eng := &fakeEngine{out: "    1 image files updated\n"}
	m := NewManager(eng)
	path := tempImage(t, "x.jpg")

	m.SetField(FieldHeadline, "Storm damage")
	m.SetField(FieldByline, "J. Smith")
	m.SetField(FieldContact, "   ") // sanitizes to empty, must not be written

	ok, err := m.SaveToFile(path)
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, eng.calls, 1)
	assert.Equal(t, []string{
		"-IPTC:Headline=Storm damage",
		"-IPTC:By-line=J. Smith",
		"-overwrite_original",
		path,
	}, eng.calls[0])
}

func TestSaveToFileRejected(t *testing.T) {
	eng := &fakeEngine{out: "0 image files updated\n"}
	m := NewManager(eng)
	path := tempImage(t, "x.jpg")
	m.SetField(FieldHeadline, "Storm damage")

	ok, err := m.SaveToFile(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveToFileNothingToWrite(t *testing.T) {
	eng := &fakeEngine{}
	m := NewManager(eng)
	path := tempImage(t, "x.jpg")

	ok, err := m.SaveToFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, eng.calls, "an empty record must not invoke the engine")
}

func TestExportImportJSON(t *testing.T) {
	eng := &fakeEngine{out: `[{"IPTC:Headline": "Storm damage", "IPTC:Credit": "AP"}]`}
	m := NewManager(eng)
	img := tempImage(t, "x.jpg")
	_, err := m.LoadFromFile(img)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "meta.json")
	require.NoError(t, m.ExportJSON(out))

	m2 := NewManager(&fakeEngine{})
	require.NoError(t, m2.ImportJSON(out))
	assert.Equal(t, "Storm damage", m2.GetField(FieldHeadline, ""))
	assert.Equal(t, "AP", m2.GetField(FieldCredit, ""))
}

func TestImportJSONBareMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Headline": "H", "NotAField": "ignored"}`), 0o644))

	m := NewManager(&fakeEngine{})
	require.NoError(t, m.ImportJSON(path))
	assert.Equal(t, "H", m.GetField(FieldHeadline, ""))
	assert.Empty(t, m.GetField("NotAField", ""))
}

func TestImportJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	assert.Error(t, NewManager(&fakeEngine{}).ImportJSON(path))
}

func TestClear(t *testing.T) {
	m := NewManager(&fakeEngine{})
	m.SetField(FieldHeadline, "H")
	m.Clear()
	assert.Empty(t, m.Record())
}
