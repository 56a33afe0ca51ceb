package patcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspostman/oaserrors"
)

func writeSource(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	return path
}

func readSource(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const untouchedSource = `public class GetPlantQueryHandler
{
    public async Task<Plant> Handle(GetPlantQuery request)
    {
        return await _plantRepository.GetAsync(p => p.Id == request.Id);
    }
}
`

func TestPatch_RewritesAndSorts(t *testing.T) {
	root := t.TempDir()
	b := writeSource(t, root, "Plants/UpdatePlantCommand.cs", handlerSource, 0o640)
	a := writeSource(t, root, "Animals/DeleteAnimalCommand.cs",
		"var animal = await _animals.GetAsync(a => a.Id == id);\n_animals.Delete(animal);\n", 0o644)
	plain := writeSource(t, root, "Plants/GetPlantQuery.cs", untouchedSource, 0o644)
	writeSource(t, root, "Plants/notes.txt", handlerSource, 0o644)

	result, err := New().Patch(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, 2, result.FixCount)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Files, 2)
	assert.Equal(t, a, result.Files[0].Path)
	assert.Equal(t, []string{"animal"}, result.Files[0].Variables())
	assert.Equal(t, b, result.Files[1].Path)
	assert.True(t, result.Files[1].Written)

	assert.Contains(t, readSource(t, b), "_plantRepository.GetTrackedAsync(")
	assert.Equal(t, untouchedSource, readSource(t, plain))

	info, err := os.Stat(b)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	}
}

func TestPatch_DryRun(t *testing.T) {
	root := t.TempDir()
	path := writeSource(t, root, "UpdatePlantCommand.cs", handlerSource, 0o644)

	p := New()
	p.DryRun = true
	result, err := p.Patch(context.Background(), root)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	require.Len(t, result.Files, 1)
	assert.False(t, result.Files[0].Written)
	assert.Equal(t, handlerSource, readSource(t, path))
}

func TestPatch_InvalidUTF8Collected(t *testing.T) {
	root := t.TempDir()
	bad := writeSource(t, root, "Broken.cs", "var x = \xff\xfe;", 0o644)
	good := writeSource(t, root, "Good.cs", handlerSource, 0o644)

	result, err := New().Patch(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	var perr *oaserrors.PatchError
	require.ErrorAs(t, result.Errors[0], &perr)
	assert.Equal(t, bad, perr.Path)
	assert.Equal(t, "read", perr.Op)
	assert.ErrorIs(t, result.Errors[0], oaserrors.ErrPatch)

	require.Len(t, result.Files, 1)
	assert.Equal(t, good, result.Files[0].Path)
}

func TestPatch_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	result, err := New().Patch(context.Background(), missing)
	require.NoError(t, err)

	assert.Zero(t, result.FilesScanned)
	require.Len(t, result.Errors, 1)
	var perr *oaserrors.PatchError
	require.ErrorAs(t, result.Errors[0], &perr)
	assert.Equal(t, "walk", perr.Op)
}

func TestPatch_MultipleRoots(t *testing.T) {
	handlers := t.TempDir()
	services := t.TempDir()
	writeSource(t, handlers, "A.cs", handlerSource, 0o644)
	writeSource(t, services, "B.cs", handlerSource, 0o644)

	p := New()
	p.Workers = 1
	result, err := p.Patch(context.Background(), handlers, services)
	require.NoError(t, err)
	assert.Len(t, result.Files, 2)
	assert.Equal(t, 2, result.FilesScanned)
}

func TestPatch_CustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "Handler.cs", handlerSource, 0o644)
	path := writeSource(t, root, "Handler.cs.txt", handlerSource, 0o644)

	p := New()
	p.Extensions = []string{".txt"}
	result, err := p.Patch(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, path, result.Files[0].Path)
}

func TestPatch_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "A.cs", handlerSource, 0o644)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Patch(ctx, root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, handlerSource, readSource(t, filepath.Join(root, "A.cs")))
}

func TestPatchWithOptions(t *testing.T) {
	root := t.TempDir()
	path := writeSource(t, root, "A.cs", handlerSource, 0o644)

	result, err := PatchWithOptions(
		WithRoots(root),
		WithExtensions(".cs"),
		WithDryRun(true),
		WithLookahead(DefaultLookahead),
		WithWorkers(2),
		WithContext(context.Background()),
	)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, handlerSource, readSource(t, path))
}

func TestPatchWithOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"no roots", nil},
		{"empty root", []Option{WithRoots("")}},
		{"bad extension", []Option{WithRoots("."), WithExtensions("cs")}},
		{"zero lookahead", []Option{WithRoots("."), WithLookahead(0)}},
		{"negative workers", []Option{WithRoots("."), WithWorkers(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PatchWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
		})
	}
}
