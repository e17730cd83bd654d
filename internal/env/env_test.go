package env

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/sethvargo/go-githubactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runs-on/envinfo/internal/display"
)

func keys(pairs []display.Pair) []string {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, p.Key)
	}
	return out
}

func TestCollect(t *testing.T) {
	pairs := Collect([]string{
		"b=2",
		"PATH=/bin:/usr/bin",
		"EMPTY=",
		"NOVALUE",
		"EQ=a=b",
		"A=1",
	})

	assert.Equal(t, []string{"A", "EMPTY", "EQ", "NOVALUE", "PATH", "b"}, keys(pairs))
	assert.Equal(t, display.Pair{Key: "EQ", Value: "a=b"}, pairs[2])
	assert.Equal(t, display.Pair{Key: "NOVALUE", Value: ""}, pairs[3])
	assert.Equal(t, display.Pair{Key: "EMPTY", Value: ""}, pairs[1])
}

func TestCollectWindowsDriveVariables(t *testing.T) {
	pairs := Collect([]string{`=C:=C:\work`, "A=1", `=ExitCode=00000000`})

	assert.Equal(t, []display.Pair{
		{Key: "=C:", Value: `C:\work`},
		{Key: "=ExitCode", Value: "00000000"},
		{Key: "A", Value: "1"},
	}, pairs)
}

func TestCollectEmpty(t *testing.T) {
	pairs := Collect(nil)
	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestGroupExample(t *testing.T) {
	pairs := Collect([]string{
		"HOME=/root",
		"GITHUB_SHA=abc123",
		"GITHUB_ACTOR=bob",
		"PATH=/bin",
	})
	grouped := Group(pairs)

	assert.Equal(t, []string{"HOME", "PATH"}, keys(grouped.Singles))
	require.Len(t, grouped.Sections, 1)
	assert.Equal(t, "GITHUB", grouped.Sections[0].Prefix)
	assert.Equal(t, []string{"GITHUB_ACTOR", "GITHUB_SHA"}, keys(grouped.Sections[0].Pairs))
	assert.Equal(t, "GITHUB_* (2)", grouped.Sections[0].Title())
	assert.Equal(t, "Variables (2)", grouped.SinglesTitle())
}

func TestGroupSingleMemberPrefixIsDemoted(t *testing.T) {
	grouped := Group(Collect([]string{"NPM_TOKEN=x"}))

	assert.Empty(t, grouped.Sections)
	assert.Equal(t, []string{"NPM_TOKEN"}, keys(grouped.Singles))
}

func TestGroupSinglesResorted(t *testing.T) {
	grouped := Group(Collect([]string{
		"ZED=1",
		"AWS_REGION=us-east-1",
		"MIDDLE=1",
		"CI=true",
		"RUNNER_OS=Linux",
		"RUNNER_ARCH=X64",
	}))

	assert.Equal(t, []string{"AWS_REGION", "CI", "MIDDLE", "ZED"}, keys(grouped.Singles))
	require.Len(t, grouped.Sections, 1)
	assert.Equal(t, "RUNNER", grouped.Sections[0].Prefix)
}

func TestGroupSectionsSortedByPrefix(t *testing.T) {
	// "AB_X" sorts before "A_X" by key, but prefix "A" sorts before "AB"
	grouped := Group(Collect([]string{"AB_X=1", "AB_Y=1", "A_X=1", "A_Y=1"}))

	require.Len(t, grouped.Sections, 2)
	assert.Equal(t, "A", grouped.Sections[0].Prefix)
	assert.Equal(t, "AB", grouped.Sections[1].Prefix)
	assert.Empty(t, grouped.Singles)
}

func TestGroupDelimiterEdgeCases(t *testing.T) {
	grouped := Group(Collect([]string{
		"_LEADING=1",
		"_OTHER=2",
		"A__DOUBLE=3",
		"A_SINGLE=4",
		"TRAILING_=5",
	}))

	require.Len(t, grouped.Sections, 2)
	assert.Equal(t, "", grouped.Sections[0].Prefix)
	assert.Equal(t, []string{"_LEADING", "_OTHER"}, keys(grouped.Sections[0].Pairs))
	assert.Equal(t, "_* (2)", grouped.Sections[0].Title())
	assert.Equal(t, "A", grouped.Sections[1].Prefix)
	assert.Equal(t, []string{"A_SINGLE", "A__DOUBLE"}, keys(grouped.Sections[1].Pairs))
	assert.Equal(t, []string{"TRAILING_"}, keys(grouped.Singles))
}

func TestGroupNoLossNoDuplication(t *testing.T) {
	environ := []string{
		"HOME=/root", "PATH=/bin", "CI=true", "NPM_TOKEN=x",
		"GITHUB_SHA=1", "GITHUB_REF=2", "GITHUB_ACTOR=3",
		"RUNNER_OS=Linux", "RUNNER_TEMP=/tmp", "JAVA_HOME=/jdk",
		"_A=1", "_B=2", "X_=1", "Y__=1", "Y__Z=1",
	}
	grouped := Group(Collect(environ))

	var seen []string
	seen = append(seen, keys(grouped.Singles)...)
	for _, section := range grouped.Sections {
		assert.GreaterOrEqual(t, len(section.Pairs), 2, "section %q", section.Prefix)
		for _, p := range section.Pairs {
			prefix, _, found := strings.Cut(p.Key, Delimiter)
			assert.True(t, found)
			assert.Equal(t, section.Prefix, prefix)
		}
		seen = append(seen, keys(section.Pairs)...)
	}

	want := keys(Collect(environ))
	slices.Sort(seen)
	assert.Equal(t, want, seen)
	assert.True(t, slices.IsSortedFunc(grouped.Singles, func(a, b display.Pair) int {
		return strings.Compare(a.Key, b.Key)
	}))
}

func TestGroupThreshold(t *testing.T) {
	grouped := Group(Collect([]string{"ONE_A=1", "TWO_A=1", "TWO_B=1", "THREE_A=1", "THREE_B=1", "THREE_C=1"}))

	prefixes := make([]string, 0, len(grouped.Sections))
	for _, s := range grouped.Sections {
		prefixes = append(prefixes, s.Prefix)
	}
	assert.Equal(t, []string{"THREE", "TWO"}, prefixes)
	assert.Equal(t, []string{"ONE_A"}, keys(grouped.Singles))
}

func TestDisplayEnvVars(t *testing.T) {
	var buf bytes.Buffer
	action := githubactions.New(githubactions.WithWriter(&buf))

	pairs := Collect([]string{
		"PATH=/bin",
		"HOME=/root",
		"GITHUB_SHA=abc123",
		"GITHUB_ACTOR=bob",
		"NPM_TOKEN=secret",
		"RUNNER_OS=Linux",
		"RUNNER_ARCH=X64",
		"CONFIG={\"a\":1}\n  \"b\":2",
	})
	grouped := DisplayEnvVars(action, pairs)

	assert.Len(t, grouped.Singles, 4)
	assert.Len(t, grouped.Sections, 2)

	g := goldie.New(t)
	g.Assert(t, "display_env_vars", buf.Bytes())
}

func TestDisplayEnvVarsEmpty(t *testing.T) {
	var buf bytes.Buffer
	action := githubactions.New(githubactions.WithWriter(&buf))

	grouped := DisplayEnvVars(action, Collect(nil))

	assert.Empty(t, grouped.Singles)
	assert.Empty(t, grouped.Sections)
	assert.Empty(t, buf.String())
}
