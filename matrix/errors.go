package matrix

import "errors"

// ErrArtifactIO wraps a failure writing one of the frozen-format artifact
// files to the destination directory.
var ErrArtifactIO = errors.New("matrix: artifact write failed")
