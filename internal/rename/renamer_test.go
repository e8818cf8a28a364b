package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	serr "reseq/internal/errors"
	"reseq/internal/listing"
	"reseq/internal/sequence"
	"reseq/pkg/testutils"
	"reseq/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var episodes = sequence.Params{Prefix: "Episode", Start: 1, Padding: 2}

func planFor(t *testing.T, dir string, order types.OrderMode, p sequence.Params) types.RenamePlan {
	t.Helper()
	entries, err := listing.List(dir, listing.Options{Order: order})
	require.NoError(t, err)
	return sequence.BuildPlan(dir, entries, p)
}

func TestExecuteEndToEnd(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesInOrder(t, dir, "b.txt", "a.txt")

	plan := planFor(t, dir, types.OrderModified, episodes)
	result, err := New().Execute(plan)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Renamed)
	assert.Equal(t, 0, result.Skipped)

	assert.Equal(t, []string{"Episode 01.txt", "Episode 02.txt"}, testutils.ListNames(t, dir))
	assert.Equal(t, "b.txt", testutils.ReadFile(t, dir, "Episode 01.txt"))
	assert.Equal(t, "a.txt", testutils.ReadFile(t, dir, "Episode 02.txt"))
}

func TestExecuteEndToEndByName(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesInOrder(t, dir, "b.txt", "a.txt")

	plan := planFor(t, dir, types.OrderName, episodes)
	require.Equal(t, "a.txt", plan.Pairs[0].OldName)

	result, err := New().Execute(plan)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Renamed)
	assert.Equal(t, []string{"Episode 01.txt", "Episode 02.txt"}, testutils.ListNames(t, dir))
	assert.Equal(t, "a.txt", testutils.ReadFile(t, dir, "Episode 01.txt"))
	assert.Equal(t, "b.txt", testutils.ReadFile(t, dir, "Episode 02.txt"))
}

func TestExecuteEmptyPrefix(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"x.jpg": "x"})

	plan := planFor(t, dir, types.OrderName, sequence.Params{Prefix: "", Start: 5, Padding: 3})
	_, err := New().Execute(plan)
	require.NoError(t, err)
	assert.Equal(t, []string{"005.jpg"}, testutils.ListNames(t, dir))
}

func TestExecuteConflictAbortsBatch(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"a.txt":          "a",
		"b.txt":          "b",
		"Episode 02.txt": "existing",
	})

	// Name order lists "a.txt", "b.txt", "Episode 02.txt"; b.txt wants Episode 02.txt.
	plan := planFor(t, dir, types.OrderName, episodes)
	result, err := New().Execute(plan)
	require.Error(t, err)
	assert.True(t, serr.IsNameConflict(err))
	assert.Contains(t, err.Error(), "Episode 02.txt")
	assert.Equal(t, 0, result.Renamed)

	assert.Equal(t, []string{"Episode 02.txt", "a.txt", "b.txt"}, testutils.ListNames(t, dir))
	assert.Equal(t, "existing", testutils.ReadFile(t, dir, "Episode 02.txt"))
}

func TestExecuteSkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesInOrder(t, dir, "Episode 01.txt", "z.txt")

	plan := planFor(t, dir, types.OrderModified, episodes)
	result, err := New().Execute(plan)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Episode 01.txt", "Episode 02.txt"}, testutils.ListNames(t, dir))
}

func TestExecuteAlreadySequenced(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesInOrder(t, dir, "b.txt", "a.txt")

	_, err := New().Execute(planFor(t, dir, types.OrderModified, episodes))
	require.NoError(t, err)

	result, err := New().Execute(planFor(t, dir, types.OrderName, episodes))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Renamed)
	assert.Equal(t, 2, result.Skipped)
}

func TestExecuteDryRun(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"a.txt": "a", "b.txt": "b"})

	r := New()
	r.SetDryRun(true)
	result, err := r.Execute(planFor(t, dir, types.OrderName, episodes))
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.Renamed)
	assert.Len(t, result.Pairs, 2)
	assert.Equal(t, []string{"a.txt", "b.txt"}, testutils.ListNames(t, dir))
}

func TestExecuteDryRunStillValidates(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"a.txt": "a", "b.txt": "b", "Episode 02.txt": ""})

	r := New()
	r.SetDryRun(true)
	_, err := r.Execute(planFor(t, dir, types.OrderName, episodes))
	assert.True(t, serr.IsNameConflict(err))
}

func TestExecuteEmptyPlan(t *testing.T) {
	result, err := New().Execute(types.RenamePlan{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, types.RenameResult{}, result)
}

func TestValidateRejectsEscapingPaths(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		pair types.RenamePair
	}{
		{"separator in name", types.RenamePair{
			OldPath: filepath.Join(dir, "a.txt"), OldName: "a.txt",
			NewPath: filepath.Join(dir, "sub", "b.txt"), NewName: "sub/b.txt",
		}},
		{"other folder", types.RenamePair{
			OldPath: filepath.Join(dir, "a.txt"), OldName: "a.txt",
			NewPath: filepath.Join(os.TempDir(), "elsewhere", "b.txt"), NewName: "b.txt",
		}},
		{"dot dot", types.RenamePair{
			OldPath: filepath.Join(dir, "a.txt"), OldName: "a.txt",
			NewPath: filepath.Join(dir, ".."), NewName: "..",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().validate([]types.RenamePair{tt.pair})
			require.Error(t, err)
			assert.Equal(t, serr.InvalidPath, serr.KindOf(err))
		})
	}
}

// fakeFS is an in-memory folder that can fail a chosen rename
type fakeFS struct {
	files  map[string]bool
	failOn string
	calls  []string
}

func newFakeFS(paths ...string) *fakeFS {
	f := &fakeFS{files: map[string]bool{}}
	for _, p := range paths {
		f.files[p] = true
	}
	return f
}

func (f *fakeFS) Lstat(name string) (os.FileInfo, error) {
	if f.files[name] {
		return nil, nil
	}
	return nil, &os.PathError{Op: "lstat", Path: name, Err: os.ErrNotExist}
}

func (f *fakeFS) Rename(oldpath, newpath string) error {
	f.calls = append(f.calls, filepath.Base(oldpath))
	if oldpath == f.failOn {
		return &os.PathError{Op: "rename", Path: oldpath, Err: fmt.Errorf("permission denied")}
	}
	delete(f.files, oldpath)
	f.files[newpath] = true
	return nil
}

func TestExecuteStopsOnFirstFailure(t *testing.T) {
	dir := "/shows"
	names := []string{"c.txt", "a.txt", "b.txt"}
	paths := make([]string, len(names))
	entries := make([]types.FileEntry, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
		entries[i] = types.FileEntry{Path: paths[i], Name: n, Ext: ".txt"}
	}

	fs := newFakeFS(paths...)
	fs.failOn = paths[1]

	result, err := NewWithFS(fs).Execute(sequence.BuildPlan(dir, entries, episodes))
	require.Error(t, err)
	assert.True(t, serr.IsRenameFailure(err))
	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, []string{"c.txt", "a.txt"}, fs.calls)

	var renameErr *serr.RenameError
	require.True(t, serr.As(err, &renameErr))
	assert.Equal(t, "a.txt", renameErr.From())
	assert.Equal(t, "Episode 02.txt", renameErr.To())
	assert.Equal(t, 1, renameErr.Completed())

	// No rollback: the first rename stays.
	assert.True(t, fs.files[filepath.Join(dir, "Episode 01.txt")])
	assert.True(t, fs.files[paths[1]])
	assert.True(t, fs.files[paths[2]])
}
