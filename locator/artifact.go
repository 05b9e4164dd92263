package locator

import "strings"

const (
	srcjarExt         = ".srcjar"
	aapt2SrcjarSuffix = "aapt2.srcjar"
	rSrcjarSuffix     = "android/R.srcjar"
	rDirSegment       = "aapt2/R"
)

// DeriveResourceDir maps a generated srcjar to the sibling directory holding
// the extracted resource sources:
//
//	a/aapt2.srcjar     => a/aapt2
//	b/android/R.srcjar => b/aapt2/R
//
// Any other name is not a recognized resource container and yields "".
func DeriveResourceDir(srcjarPath string) string {
	switch {
	case strings.HasSuffix(srcjarPath, aapt2SrcjarSuffix):
		return strings.TrimSuffix(srcjarPath, srcjarExt)
	case strings.HasSuffix(srcjarPath, rSrcjarSuffix):
		return strings.TrimSuffix(srcjarPath, rSrcjarSuffix) + rDirSegment
	}
	return ""
}

// DeriveJarPseudoPath marks a srcjar as an attachable source root without
// extracting it, using the IDE's jar-entry notation.
func DeriveJarPseudoPath(srcjarPath string) string {
	return srcjarPath + "!/"
}
