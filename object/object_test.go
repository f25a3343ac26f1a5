/*
File    : gomix-lite/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(&Nil{}))
	assert.False(t, Truthy(&Uninitialized{}))
	assert.False(t, Truthy(&Boolean{Value: false}))
	assert.True(t, Truthy(&Boolean{Value: true}))
	assert.True(t, Truthy(&Number{Value: 0}))
	assert.True(t, Truthy(&String{Value: ""}))
}

func TestEqualsStructural(t *testing.T) {
	assert.True(t, Equals(&Number{Value: 3}, &Number{Value: 3}))
	assert.True(t, Equals(&String{Value: "a"}, &String{Value: "a"}))
	assert.True(t, Equals(&Nil{}, &Nil{}))
	assert.False(t, Equals(&Number{Value: 3}, &String{Value: "3"}))
}

func TestEqualsNaNIsNeverEqual(t *testing.T) {
	nan := &Number{Value: math.NaN()}
	assert.False(t, Equals(nan, nan))
}

func TestNumberToStringHasNoTrailingZero(t *testing.T) {
	assert.Equal(t, "3", (&Number{Value: 3}).ToString())
	assert.Equal(t, "3.5", (&Number{Value: 3.5}).ToString())
}
