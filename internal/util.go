package internal

import (
	"crypto/rand"
	"fmt"
	"hash/fnv"
	"math/big"
)

// calculateLane maps equal keys to the same lane. Empty keys are spread randomly.
func calculateLane(key []byte, laneCount int) int {
	if laneCount <= 1 {
		return 0
	}
	if len(key) == 0 {
		nBig, err := rand.Int(rand.Reader, big.NewInt(int64(laneCount)))
		if err != nil {
			return 0
		}
		return int(nBig.Int64())
	}
	h := fnv.New32a()
	_, _ = h.Write(key)
	return int(h.Sum32() % uint32(laneCount))
}

func getKey(topic string, partition int32) string {
	return fmt.Sprintf("%s_%d", topic, partition)
}
