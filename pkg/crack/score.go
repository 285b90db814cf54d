package crack

// Per-byte weights used by Score
const (
	WeightLetter      = 20
	WeightSpace       = 20
	WeightDigit       = 10
	WeightPunctuation = 1
)

// Score rates how much b looks like English ASCII text. Letters and spaces
// weigh the most, digits less, printable punctuation barely counts and
// every other byte (control characters, non-ASCII) counts for nothing.
// The total is not normalised by length.
func Score(b []byte) int {
	total := 0
	for _, c := range b {
		total += byteWeight(c)
	}
	return total
}

func byteWeight(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return WeightLetter
	case c == ' ':
		return WeightSpace
	case c >= '0' && c <= '9':
		return WeightDigit
	case c >= '!' && c <= '/', c >= ':' && c <= '@', c >= '[' && c <= '`', c >= '{' && c <= '~':
		return WeightPunctuation
	default:
		return 0
	}
}
