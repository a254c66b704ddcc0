package format

// DefaultChunkSize bounds how much transcript goes into one generation
// request. Chosen to stay comfortably under the model's context limit.
const DefaultChunkSize = 30000

// SplitChunks divides text into ordered, non-overlapping chunks of at most
// size characters each; only the last chunk may be shorter. Concatenating the
// chunks reproduces text exactly, and an empty input yields no chunks.
//
// The split is purely positional. A chunk may end mid-word; boundary-aware
// splitting was rejected as not worth the extra passes over large inputs.
func SplitChunks(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
