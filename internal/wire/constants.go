package wire

import "math"

const (
	// PresenceTagSize is the width of the tag in front of an Optional value.
	PresenceTagSize = 1
	// CountPrefixSize is the width of the element count in front of a Sequence or Map.
	CountPrefixSize = 4
	// StringLengthPrefixSize is the width of the byte length in front of a String.
	StringLengthPrefixSize = 4
	// EnumSize is the width of an enum discriminant.
	EnumSize = 4

	TagAbsent  byte = 0
	TagPresent byte = 1

	// MaxLength is the largest count or byte length a prefix can express.
	MaxLength = math.MaxInt32
)
