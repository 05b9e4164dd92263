package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePackageDeclaration(t *testing.T) {
	src := []byte(`package com.android;

public class Java {}
`)
	assert.Equal(t, "com.android", ParsePackageDeclaration(src))
}

func TestParsePackageDeclaration_NoPackage(t *testing.T) {
	src := []byte(`public class NoPackage {}
`)
	assert.Equal(t, "", ParsePackageDeclaration(src))
}

func TestParsePackageDeclaration_IgnoresCommentedOutPackage(t *testing.T) {
	src := []byte(`// package com.wrong;
/* package com.also.wrong; */
package com.android.settings;

class Settings {}
`)
	assert.Equal(t, "com.android.settings", ParsePackageDeclaration(src))
}

func TestParsePackageDeclaration_OnlyCommentedPackage(t *testing.T) {
	src := []byte(`// package com.wrong;

class Orphan {}
`)
	assert.Equal(t, "", ParsePackageDeclaration(src))
}

func TestParsePackageDeclaration_LeadingCommentsAndAnnotations(t *testing.T) {
	src := []byte(`/*
 * Copyright notice.
 */
@Deprecated
package com.android.internal;
`)
	assert.Equal(t, "com.android.internal", ParsePackageDeclaration(src))
}

func TestParsePackageDeclaration_EmptySource(t *testing.T) {
	assert.Equal(t, "", ParsePackageDeclaration([]byte{}))
}
