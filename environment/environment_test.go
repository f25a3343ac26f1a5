/*
File    : gomix-lite/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/gomix-lite/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	require.NoError(t, env.Define("x", &object.Number{Value: 5}))

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.(*object.Number).Value)
}

func TestGetWalksEnclosingChain(t *testing.T) {
	global := New(nil)
	require.NoError(t, global.Define("x", &object.Number{Value: 1}))
	child := New(global)

	v, err := child.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.(*object.Number).Value)
}

func TestGetUndefinedIsError(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestGetUninitializedIsError(t *testing.T) {
	env := New(nil)
	require.NoError(t, env.Define("x", &object.Uninitialized{}))
	_, err := env.Get("x")
	assert.Error(t, err)
}

func TestAssignMutatesNearestDefiningFrame(t *testing.T) {
	global := New(nil)
	require.NoError(t, global.Define("x", &object.Number{Value: 1}))
	child := New(global)

	require.NoError(t, child.Assign("x", &object.Number{Value: 2}))

	v, err := global.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.(*object.Number).Value)
}

func TestAssignUndefinedIsError(t *testing.T) {
	env := New(nil)
	err := env.Assign("never_defined", &object.Number{Value: 1})
	assert.Error(t, err)
}

func TestDefineShadowsInNestedScope(t *testing.T) {
	global := New(nil)
	require.NoError(t, global.Define("x", &object.Number{Value: 1}))
	child := New(global)
	require.NoError(t, child.Define("x", &object.Number{Value: 2}))

	v, err := child.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.(*object.Number).Value)

	gv, err := global.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, gv.(*object.Number).Value)
}
