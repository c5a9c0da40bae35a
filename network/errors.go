package network

import "errors"

// ErrQueueFull is returned by Send when the target transmit queue has
// reached its configured capacity (SetQueueCapacity).
var ErrQueueFull = errors.New("network: transmit queue is full")

// ErrInvalidFrameLength is returned by Send when data is empty or
// longer than can.MaxDataLength bytes (spec §4.5: transport-protocol
// segmentation for longer payloads is out of scope).
var ErrInvalidFrameLength = errors.New("network: frame data must be 1-8 bytes")
