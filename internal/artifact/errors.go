package artifact

import "errors"

var ErrMetadataUnavailable = errors.New("failed to get cargo metadata")
