package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	require.NotNil(t, Semver(GetVersion()), "the default build version is a semantic version")
}

func TestSemver(t *testing.T) {
	v := Semver("1.4.2")
	require.NotNil(t, v)
	assert.Equal(t, uint64(1), v.Major())
	assert.True(t, IsRelease("1.4.2"))
	assert.True(t, IsRelease("v2.0.0"))

	require.NotNil(t, Semver("0.1.0-dev"))
	assert.False(t, IsRelease("0.1.0-dev"))

	assert.Nil(t, Semver("not-a-version"))
	assert.False(t, IsRelease("not-a-version"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "1.4.2 (release)", Describe("1.4.2"))
	assert.Equal(t, "0.1.0-dev (development build)", Describe("0.1.0-dev"))
	assert.Equal(t, "test (development build)", Describe("test"))
}
