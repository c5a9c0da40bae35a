package j1939

// Priority is the 3-bit CAN arbitration priority field, 0 is highest.
type Priority uint8

const (
	PriorityHighest Priority = 0
	PriorityDefault Priority = 6
	PriorityLowest  Priority = 7
)

// IsHighest reports whether p is the highest (numerically lowest) priority.
func (p Priority) IsHighest() bool { return p == PriorityHighest }

// IsDefault reports whether p is the conventional default priority (6).
func (p Priority) IsDefault() bool { return p == PriorityDefault }

// IsLowest reports whether p is the lowest priority.
func (p Priority) IsLowest() bool { return p == PriorityLowest }
