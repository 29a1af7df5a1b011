package remap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidUserCount)

	_, err = New(-3)
	assert.ErrorIs(t, err, ErrInvalidUserCount)

	r, err := New(DefaultUserCount)
	require.NoError(t, err)
	assert.Equal(t, 21, r.UserCount)
}

func TestIndexAndID(t *testing.T) {
	r := &Remapper{UserCount: 21}

	tests := []struct {
		in, index, id int
	}{
		{0, 0, 21},
		{1, 1, 1},
		{20, 20, 20},
		{21, 0, 21},
		{22, 1, 1},
		{45, 3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.index, r.Index(tt.in), "Index(%d)", tt.in)
		assert.Equal(t, tt.id, r.ID(tt.in), "ID(%d)", tt.in)
	}
}

func TestRewrite(t *testing.T) {
	r := &Remapper{UserCount: 21}

	in := `final owner = localUsers[25];
final members = [localUsers[3], localUsers[42]];
const ids = ['u22', 'u0', 'u21', 'u7'];
const label = 'user22';`
	want := `final owner = localUsers[4];
final members = [localUsers[3], localUsers[0]];
const ids = ['u1', 'u21', 'u21', 'u7'];
const label = 'user22';`

	assert.Equal(t, want, string(r.Rewrite([]byte(in))))
}

func TestRewriteFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "dummy_projects.dart")
	missing := filepath.Join(dir, "seed_events.dart")
	require.NoError(t, os.WriteFile(present, []byte("localUsers[30] 'u30'"), 0o640))

	r := &Remapper{UserCount: 21}
	var out bytes.Buffer
	require.NoError(t, r.RewriteFiles([]string{present, missing}, &out))

	assert.Equal(t,
		"Remapped user references in "+present+"\nFile not found: "+missing+"\n",
		out.String())

	content, err := os.ReadFile(present)
	require.NoError(t, err)
	assert.Equal(t, "localUsers[9] 'u9'", string(content))

	info, err := os.Stat(present)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}
