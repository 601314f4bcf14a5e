package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefines(t *testing.T) {
	assert := assert.New(t)

	define, err := parseDefines([]string{"BASE=20", "N=0"})
	assert.NoError(err)
	assert.Equal(map[string]int{"BASE": 20, "N": 0}, define)

	define, err = parseDefines(nil)
	assert.NoError(err)
	assert.Empty(define)

	for _, item := range []string{"BASE", "=3", "BASE=x"} {
		_, err = parseDefines([]string{item})
		assert.Error(err, item)
	}
}
