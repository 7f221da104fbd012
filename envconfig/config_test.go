package envconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	Debug = false
	t.Setenv("PARASAIL_DEBUG", "")
	LoadConfig()
	assert.False(t, Debug)
	t.Setenv("PARASAIL_DEBUG", "false")
	LoadConfig()
	assert.False(t, Debug)
	t.Setenv("PARASAIL_DEBUG", "1")
	LoadConfig()
	assert.True(t, Debug)
	t.Setenv("PARASAIL_DEBUG", "yes please")
	LoadConfig()
	assert.True(t, Debug)
}

func TestLibrary(t *testing.T) {
	t.Setenv("PARASAIL_LIBRARY", " \"/opt/parasail/libparasail.so\" ")
	LoadConfig()
	assert.Equal(t, "/opt/parasail/libparasail.so", Library)
}

func TestDefaults(t *testing.T) {
	t.Setenv("PARASAIL_MATRIX", "")
	t.Setenv("PARASAIL_GAP_OPEN", "")
	t.Setenv("PARASAIL_GAP_EXTEND", "")
	Matrix, GapOpen, GapExtend = "blosum62", 10, 1
	LoadConfig()
	assert.Equal(t, "blosum62", Matrix)
	assert.Equal(t, 10, GapOpen)
	assert.Equal(t, 1, GapExtend)

	t.Setenv("PARASAIL_MATRIX", "pam250")
	t.Setenv("PARASAIL_GAP_OPEN", "12")
	t.Setenv("PARASAIL_GAP_EXTEND", "not a number")
	LoadConfig()
	assert.Equal(t, "pam250", Matrix)
	assert.Equal(t, 12, GapOpen)
	assert.Equal(t, 1, GapExtend)
}

func TestAsMap(t *testing.T) {
	m := AsMap()
	assert.Contains(t, m, "PARASAIL_LIBRARY")
	assert.Contains(t, m, "PARASAIL_DEBUG")
	assert.Len(t, Values(), len(m))
}
