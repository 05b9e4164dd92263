package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet_AddIsIdempotent(t *testing.T) {
	s := NewStringSet()
	s.Add("a/b")
	s.Add("a/b")
	assert.Equal(t, []string{"a/b"}, s.Sorted())
}

func TestStringSet_SortedIsLexical(t *testing.T) {
	s := NewStringSet("b", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}

func TestResult_MergeUnionsAllSets(t *testing.T) {
	first := NewResult()
	first.SrcDirs.Add("src/main/java")
	first.JarFiles.Add("libs/first.jar")

	second := NewResult()
	second.SrcDirs.Add("src/main/java")
	second.TestDirs.Add("tests")
	second.MissingJars.Add("libs/gone.jar")

	merged := NewResult()
	merged.Merge(first)
	merged.Merge(second)

	assert.Equal(t, []string{"src/main/java"}, merged.SrcDirs.Sorted())
	assert.Equal(t, []string{"tests"}, merged.TestDirs.Sorted())
	assert.Equal(t, []string{"libs/first.jar"}, merged.JarFiles.Sorted())
	assert.Equal(t, []string{"libs/gone.jar"}, merged.MissingJars.Sorted())
}

func TestResult_MergeOrderDoesNotMatter(t *testing.T) {
	first := NewResult()
	first.BuildTargets.Add("x.srcjar")
	second := NewResult()
	second.BuildTargets.Add("y.srcjar")

	forward := NewResult()
	forward.Merge(first)
	forward.Merge(second)

	backward := NewResult()
	backward.Merge(second)
	backward.Merge(first)

	assert.Equal(t, forward.BuildTargets.Sorted(), backward.BuildTargets.Sorted())
}
