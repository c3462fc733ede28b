package heuristic

import "errors"

// ErrTooFewDisks is returned when an instance (tour or path) has fewer than
// 2 disks, too small for a nearest-neighbor order to be meaningful.
var ErrTooFewDisks = errors.New("heuristic: need at least 2 disks")
