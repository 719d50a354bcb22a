package message

// SliceMessages splits messages into chunks of at most size elements. A non
// positive size yields nil.
func SliceMessages(messages []*ProducerMessage, size int) [][]*ProducerMessage {
	if size <= 0 {
		return nil
	}
	chunks := make([][]*ProducerMessage, 0, len(messages)/size+1)
	for start := 0; start < len(messages); start += size {
		end := min(start+size, len(messages))
		chunks = append(chunks, messages[start:end:end])
	}
	return chunks
}
