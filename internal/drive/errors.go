package drive

import "errors"

var (
	// ErrRemoteFetch indicates a directory listing or content read failed.
	// Surfaced inline at the affected node; never retried automatically.
	ErrRemoteFetch = errors.New("remote fetch failed")

	// ErrNoToken indicates no bearer token is available. A precondition
	// failure: connect the integration first, nothing is retried.
	ErrNoToken = errors.New("no access token")

	// ErrUnknownNode indicates the node ID is not in the tree.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNotFolder and ErrNotFile guard Expand/Select against the wrong
	// node kind.
	ErrNotFolder = errors.New("node is not a folder")
	ErrNotFile   = errors.New("node is not a file")
)
