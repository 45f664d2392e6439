// File: list/json.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package list

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/momentics/seqkit/api"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the list as a JSON array in element order.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	l.lock()
	elems := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		elems = append(elems, n.Value)
	}
	l.unlock()
	return json.Marshal(elems)
}

// UnmarshalJSON replaces the list's contents with the elements of a
// JSON array.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	l.lock()
	defer l.unlock()
	if l.destroyed {
		return api.NewError(api.CodeInvalidArgument, "list is destroyed")
	}
	l.clearLocked()
	for _, e := range elems {
		n, err := l.newNode(e)
		if err != nil {
			return err
		}
		l.linkBack(n)
	}
	return nil
}
