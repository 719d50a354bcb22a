package config

type RequiredAcks string

const (
	NoResponse   RequiredAcks = "NoResponse"
	WaitForLocal RequiredAcks = "WaitForLocal"
	WaitForAll   RequiredAcks = "WaitForAll"
)

type OffsetInitial string

const (
	OffsetNewest OffsetInitial = "newest"
	OffsetOldest OffsetInitial = "oldest"
)

type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionGZIP   Compression = "gzip"
	CompressionSnappy Compression = "snappy"
	CompressionLZ4    Compression = "lz4"
	CompressionZSTD   Compression = "zstd"
)

type SASLMechanism string

const (
	SASLPlain       SASLMechanism = "PLAIN"
	SASLScramSHA256 SASLMechanism = "SCRAM-SHA-256"
	SASLScramSHA512 SASLMechanism = "SCRAM-SHA-512"
)
