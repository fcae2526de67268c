package joblock

import "errors"

var ErrLockNotFound = errors.New("job lock not found")
