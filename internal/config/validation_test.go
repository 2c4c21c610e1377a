package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryExtensionSet_DefaultsWhenEmpty(t *testing.T) {
	set := Default().BinaryExtensionSet()

	assert.Len(t, set, len(DefaultBinaryExtensions))
	assert.Contains(t, set, ".png")
	assert.Contains(t, set, ".woff2")
}

func TestBinaryExtensionSet_CustomReplacesDefaults(t *testing.T) {
	cfg := Default()
	cfg.BinaryExtensions = []string{".foo"}

	set := cfg.BinaryExtensionSet()

	assert.Equal(t, map[string]struct{}{".foo": {}}, set)
	assert.NotContains(t, set, ".png")
}

func TestNewExtensionSet_Normalizes(t *testing.T) {
	set := NewExtensionSet([]string{".PNG", "psd", "  .Raw ", ""})

	assert.Equal(t, map[string]struct{}{".png": {}, ".psd": {}, ".raw": {}}, set)
}

func TestValidate_DefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
