// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"errors"
	"fmt"
)

// ErrInvalidInputs is returned when a Pack or Unpack method is called on a
// nil value or with a nil cursor.
var ErrInvalidInputs = errors.New("rrc: invalid inputs")

// UnsupportedVariantError reports a discriminant that is valid on the wire
// but has no codec in this package, e.g. a spare message alternative or a
// criticalExtensionsFuture branch. It aborts the enclosing message.
type UnsupportedVariantError struct {
	Kind  string
	Value int
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("rrc: unsupported %s variant %d", e.Kind, e.Value)
}

// IsUnsupported reports whether err carries an UnsupportedVariantError.
func IsUnsupported(err error) bool {
	var uv *UnsupportedVariantError
	return errors.As(err, &uv)
}
