package validation

import "errors"

var ErrValidationInProgress = errors.New("validation already in progress")
