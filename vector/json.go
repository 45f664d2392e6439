// File: vector/json.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// JSON codec: a vector marshals as a plain JSON array of its elements.

package vector

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/momentics/seqkit/api"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the stored elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	v.lock()
	defer v.unlock()
	return json.Marshal(v.data[:v.size])
}

// UnmarshalJSON replaces the vector's contents with the elements of a
// JSON array. Existing elements are destructed first.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	v.lock()
	defer v.unlock()
	if v.destroyed {
		return api.NewError(api.CodeInvalidArgument, "vector is destroyed")
	}
	v.clearLocked()
	if err := v.ensureCapacity(len(elems)); err != nil {
		return err
	}
	copy(v.data, elems)
	v.size = len(elems)
	return nil
}
