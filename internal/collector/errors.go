package collector

import "errors"

// ErrNoSelection is returned when Collect is called without any input paths.
var ErrNoSelection = errors.New("no files or folders selected")
