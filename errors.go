package pgc

import (
	"errors"

	"github.com/syssam/pgc/compiler/gen"
	"github.com/syssam/pgc/compiler/request"
)

// ErrEmptyPayload is returned by Handle when the host sends no request.
var ErrEmptyPayload = errors.New("pgc: empty request payload")

// IsUserError reports whether err was caused by the request or its
// configuration rather than by a defect of pgc.
func IsUserError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrEmptyPayload) ||
		request.IsDecodeError(err) ||
		gen.IsUnsupportedTarget(err) ||
		gen.IsMissingOptionError(err) ||
		gen.IsPathError(err) ||
		gen.IsConfigError(err)
}
