package patcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerSource = `public class UpdatePlantCommandHandler
{
    public async Task<IResult> Handle(UpdatePlantCommand request)
    {
        var plant = await _plantRepository.GetAsync(p => p.Id == request.Id);
        plant.Name = request.Name;
        _plantRepository.Update(plant);
        return new SuccessResult();
    }
}
`

func TestCandidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"update", "x.GetAsync(a); r.Update(a);", true},
		{"delete", "x.GetAsync(a); r.Delete(a);", true},
		{"no lookup", "r.Update(a);", false},
		{"no mutation", "x.GetAsync(a);", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidate(tt.content))
		})
	}
}

func TestRewrite_Update(t *testing.T) {
	out, fixes := Rewrite(handlerSource, DefaultLookahead)

	require.Len(t, fixes, 1)
	assert.Equal(t, "plant", fixes[0].Variable)
	assert.Equal(t, 5, fixes[0].Line)
	assert.Equal(t, "var plant = await _plantRepository.GetAsync(p => p.Id == request.Id);", fixes[0].Statement)
	assert.Contains(t, out, "var plant = await _plantRepository.GetTrackedAsync(p => p.Id == request.Id);")
	assert.NotContains(t, out, ".GetAsync(")
}

func TestRewrite_Delete(t *testing.T) {
	src := "var user = await _users.GetAsync(u => u.Id == id);\n_users.Delete(user);\n"
	out, fixes := Rewrite(src, DefaultLookahead)

	require.Len(t, fixes, 1)
	assert.Equal(t, "var user = await _users.GetTrackedAsync(u => u.Id == id);\n_users.Delete(user);\n", out)
}

func TestRewrite_NoMutationOfVariable(t *testing.T) {
	src := "var user = await _users.GetAsync(u => u.Id == id);\n_users.Update(other);\n"
	out, fixes := Rewrite(src, DefaultLookahead)

	assert.Empty(t, fixes)
	assert.Equal(t, src, out)
}

func TestRewrite_OutsideLookahead(t *testing.T) {
	src := "var user = await _users.GetAsync(u => u.Id == id);\n" +
		strings.Repeat(" ", 600) + "_users.Update(user);\n"

	_, fixes := Rewrite(src, DefaultLookahead)
	assert.Empty(t, fixes)

	_, fixes = Rewrite(src, 1000)
	assert.Len(t, fixes, 1)
}

func TestRewrite_LookaheadUsesOriginalContent(t *testing.T) {
	// the first rewrite lengthens the text; the second window is still
	// measured against the unmodified source
	first := "var a = await _r.GetAsync(x => x.Id == 1);\n_r.Update(a);\n"
	second := "var b = await _r.GetAsync(x => x.Id == 2);\n"
	src := first + second + strings.Repeat(" ", 480) + "_r.Delete(b);\n"

	out, fixes := Rewrite(src, DefaultLookahead)

	require.Len(t, fixes, 2)
	assert.Equal(t, []string{"a", "b"}, []string{fixes[0].Variable, fixes[1].Variable})
	assert.Equal(t, 2, strings.Count(out, ".GetTrackedAsync("))
}

func TestRewrite_IdenticalStatementsAllRewritten(t *testing.T) {
	stmt := "var p = await _repo.GetAsync(x => x.Id == id);"
	src := stmt + "\n_repo.Update(p);\n" + strings.Repeat("/", 600) + "\n" + stmt + "\nreturn p;\n"

	out, fixes := Rewrite(src, DefaultLookahead)

	require.Len(t, fixes, 1)
	assert.Equal(t, 2, strings.Count(out, ".GetTrackedAsync("))
	assert.NotContains(t, out, ".GetAsync(")
}

func TestRewrite_IgnoresNonAssignments(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no await", "var p = _repo.GetAsync(x => x.Id == id);\n_repo.Update(p);"},
		{"no var", "p = await _repo.GetAsync(x => x.Id == id);\n_repo.Update(p);"},
		{"empty args", "var p = await _repo.GetAsync();\n_repo.Update(p);"},
		{"list lookup", "var p = await _repo.GetListAsync(x => x.Id == id);\n_repo.Update(p);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, fixes := Rewrite(tt.src, DefaultLookahead)
			assert.Empty(t, fixes)
			assert.Equal(t, tt.src, out)
		})
	}
}

func TestRewrite_DefaultLookaheadWhenZero(t *testing.T) {
	_, fixes := Rewrite(handlerSource, 0)
	assert.Len(t, fixes, 1)
}

func TestRewrite_LookaheadCountsCharacters(t *testing.T) {
	// "\n" + padding + "\n" + "_r.Delete(e)" must fit in 500 characters
	build := func(n int) string {
		return "var e = await _r.GetAsync(1);\n" + strings.Repeat("ş", n) + "\n_r.Delete(e);\n"
	}

	_, fixes := Rewrite(build(300), DefaultLookahead)
	assert.Len(t, fixes, 1)

	_, fixes = Rewrite(build(486), DefaultLookahead)
	assert.Len(t, fixes, 1)

	_, fixes = Rewrite(build(487), DefaultLookahead)
	assert.Empty(t, fixes)
}

func TestRewrite_CRLFCountsAsOneCharacter(t *testing.T) {
	src := "var e = await _r.GetAsync(1);\r\n" + strings.Repeat("x\r\n", 240) + "_r.Update(e);\r\n"

	out, fixes := Rewrite(src, DefaultLookahead)
	require.Len(t, fixes, 1)
	assert.Contains(t, out, "_r.GetTrackedAsync(1);\r\n")
}

func TestRewrite_UnicodeIdentifier(t *testing.T) {
	src := "var kullanıcı = await _r.GetAsync(1);\n_r.Update(kullanıcı);\n"

	out, fixes := Rewrite(src, DefaultLookahead)
	require.Len(t, fixes, 1)
	assert.Equal(t, "kullanıcı", fixes[0].Variable)
	assert.Equal(t, "var kullanıcı = await _r.GetTrackedAsync(1);\n_r.Update(kullanıcı);\n", out)
}

func TestWindowEnd(t *testing.T) {
	tests := []struct {
		name    string
		content string
		start   int
		n       int
		want    int
	}{
		{"ascii", "abcdef", 1, 3, 4},
		{"clamped", "abc", 0, 10, 3},
		{"multibyte", "şşş", 0, 2, 4},
		{"crlf", "a\r\nb", 0, 2, 3},
		{"lone cr", "a\rb", 0, 2, 2},
		{"zero", "abc", 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, windowEnd(tt.content, tt.start, tt.n))
		})
	}
}
