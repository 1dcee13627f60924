package common

import "time"

const (
	BaseWidth  = 720
	BaseHeight = 1280

	// NodeCount is the fixed length of the glyph chain.
	NodeCount = 5

	DefaultStep     = 0.05
	DefaultInterval = 50 * time.Millisecond
)
