package internals

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectWalk(t *testing.T, root string, opts WalkOptions) []string {
	t.Helper()
	paths := make([]string, 0, 8)
	for path, err := range Walk(root, opts) {
		require.NoError(t, err)
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func TestWalkRegularFiles(t *testing.T) {
	base := createTestFiles(t)

	actual := collectWalk(t, base, WalkOptions{})
	assert.Equal(t, []string{`1/2`, `1/3/5`, `1/3/6`, `1/4/7/8`}, actual)
}

func TestWalkSkipsSymlinks(t *testing.T) {
	base := createTestFiles(t)
	require.NoError(t, os.Symlink(filepath.Join(base, `1/2`), filepath.Join(base, `link-to-file`)))
	require.NoError(t, os.Symlink(filepath.Join(base, `1/3`), filepath.Join(base, `link-to-dir`)))

	actual := collectWalk(t, base, WalkOptions{})
	assert.Equal(t, []string{`1/2`, `1/3/5`, `1/3/6`, `1/4/7/8`}, actual)
}

func TestWalkFollowsSymlinkedRoot(t *testing.T) {
	base := createTestFiles(t)
	link := filepath.Join(t.TempDir(), "root")
	require.NoError(t, os.Symlink(base, link))

	actual := collectWalk(t, link, WalkOptions{})
	assert.Equal(t, []string{`1/2`, `1/3/5`, `1/3/6`, `1/4/7/8`}, actual)
}

func TestWalkExclusions(t *testing.T) {
	base := createTestFiles(t)
	regexes, err := CompileBasenameRegexes([]string{`^6$`})
	require.NoError(t, err)

	actual := collectWalk(t, base, WalkOptions{
		ExcludeBasename:      []string{`2`},
		ExcludeBasenameRegex: regexes,
		ExcludeTree:          []string{`1/4`},
	})
	assert.Equal(t, []string{`1/3/5`}, actual)

	actual = collectWalk(t, base, WalkOptions{ExcludeTree: []string{`1/3/5`}})
	assert.Equal(t, []string{`1/2`, `1/3/6`, `1/4/7/8`}, actual)
}

func TestCompileBasenameRegexesInvalid(t *testing.T) {
	_, err := CompileBasenameRegexes([]string{`(`})
	assert.ErrorContains(t, err, `invalid basename regex '('`)
}

func TestWalkNonexistentRoot(t *testing.T) {
	actual := collectWalk(t, filepath.Join(t.TempDir(), "absent"), WalkOptions{})
	assert.Empty(t, actual)
}

func TestWalkStopsEarly(t *testing.T) {
	base := createTestFiles(t)

	count := 0
	for _, err := range Walk(base, WalkOptions{}) {
		require.NoError(t, err)
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestWalkUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	base := createTestFiles(t)
	locked := filepath.Join(base, `1/3`)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	paths := make([]string, 0, 4)
	errs := 0
	for path, err := range Walk(base, WalkOptions{}) {
		if err != nil {
			errs++
			assert.ErrorIs(t, err, os.ErrPermission)
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	assert.Equal(t, 1, errs)
	assert.Equal(t, []string{`1/2`, `1/4/7/8`}, paths)
}
