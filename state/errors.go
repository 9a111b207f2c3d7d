package state

import "errors"

var (
	// ErrInvalidBlock is returned when a block cannot host both ends of a link
	ErrInvalidBlock = errors.New("block has fewer than two usable host addresses")
	// ErrDuplicateEndpoint is returned when both sides of a link are the same device
	ErrDuplicateEndpoint = errors.New("link endpoints must be distinct devices")
	ErrUnknownName       = errors.New("unknown device name")
	ErrUnknownDevice     = errors.New("unknown device handle")
)
