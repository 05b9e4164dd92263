package java

import (
	"path"
	"regexp"
	"strings"
)

// ParseSourceRoot infers the source root directory of a Java file from its
// declared package. The package is matched as a path segment directly in
// front of the file name; a dot in the package matches both a directory
// separator and a literal dot, so package c.d locates the file under either
// c/d/ or a directory literally named c.d/.
//
// Because the match is anchored at the terminal file name, only the segment
// occurrence adjacent to the file is ever considered, however many times the
// package text appears earlier in the path:
//
//	a/b/c/d/e.java     + c.d   => a/b
//	a/b/c.d/e.java     + c.d   => a/b
//	a/b/c.d/e/c/d/f.java + c.d => a/b/c.d/e
//
// When the package does not match the directory layout at all, the file's own
// directory is the best remaining guess and is returned as the root.
func ParseSourceRoot(javaFile, packageName string) string {
	re, err := sourceRootPattern(javaFile, packageName)
	if err != nil {
		return path.Dir(javaFile)
	}

	match := re.FindStringSubmatchIndex(javaFile)
	if match == nil {
		return path.Dir(javaFile)
	}

	// Index 2 is the start of the capture group holding the package segment.
	root := strings.TrimSuffix(javaFile[:match[2]], "/")
	return root
}

func sourceRootPattern(javaFile, packageName string) (*regexp.Regexp, error) {
	parts := strings.Split(packageName, ".")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	fileName := regexp.QuoteMeta(path.Base(javaFile))
	pattern := `(?:^|/)(` + strings.Join(parts, `[./]`) + `/` + fileName + `)$`
	return regexp.Compile(pattern)
}
