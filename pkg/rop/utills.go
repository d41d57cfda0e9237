package rop

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors splits an errors.Join result back into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinErrors appends err to the errors already joined in acc.
func JoinErrors(acc error, err error) error {
	if IsNil(err) {
		return acc
	}
	return errors.Join(append(GetErrors(acc), err)...)
}
