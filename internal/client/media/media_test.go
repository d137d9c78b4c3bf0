package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	const base = "http://192.168.0.27:3000"

	tests := []struct {
		ref  string
		want Kind
	}{
		{"", None},
		{"   ", None},
		{base + "/uploads/vase.jpg", Remote},
		{"https://cdn.example.com/x.png", Remote},
		{"file:///storage/emulated/0/DCIM/x.jpg", Local},
		{"/home/ana/pictures/vase.jpg", Local},
		{"vase.jpg", Local},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ref, base))
		})
	}

	assert.Equal(t, Remote, Classify(base+"/uploads/a.jpg", base+"/"))
}

func TestExternal(t *testing.T) {
	const base = "http://192.168.0.27:3000"

	assert.False(t, External(base+"/uploads/vase.jpg", base))
	assert.False(t, External("/home/ana/vase.jpg", base))
	assert.False(t, External("", base))
	assert.True(t, External("https://cdn.example.com/x.png", base))
	assert.True(t, External("http://other:3000/uploads/x.png", base+"/"))
}

func TestResolveURL(t *testing.T) {
	assert.Equal(t, "http://h:3000/uploads/a.jpg", ResolveURL("http://h:3000/", "/uploads/a.jpg"))
	assert.Equal(t, "http://h:3000/uploads/a.jpg", ResolveURL("http://h:3000", "uploads/a.jpg"))
	assert.Equal(t, "https://x/y.png", ResolveURL("http://h:3000", "https://x/y.png"))
	assert.Equal(t, "", ResolveURL("http://h:3000", ""))
}

func TestLoad(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	path := filepath.Join(t.TempDir(), "vase.png")
	require.NoError(t, os.WriteFile(path, png, 0o600))

	f, err := Load("file://" + path)
	require.NoError(t, err)
	assert.Equal(t, "vase.png", f.Name)
	assert.Equal(t, "image/png", f.ContentType)
	assert.Equal(t, png, f.Data)

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "remote", Remote.String())
	assert.Equal(t, "local", Local.String())
}
