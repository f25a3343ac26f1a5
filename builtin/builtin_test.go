/*
File    : gomix-lite/builtin/builtin_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"testing"

	"github.com/akashmaji946/gomix-lite/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockReturnsANumber(t *testing.T) {
	var clock *Builtin
	for _, b := range All() {
		if b.Name == "clock" {
			clock = b
		}
	}
	require.NotNil(t, clock)
	assert.Equal(t, 0, clock.Arity)

	v, err := clock.Callback(nil)
	require.NoError(t, err)
	_, ok := v.(*object.Number)
	assert.True(t, ok)
}
