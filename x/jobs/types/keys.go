package types

import (
	"encoding/binary"
)

const (
	// ModuleName defines the module name
	ModuleName = "jobs"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for jobs
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_jobs"
)

// KVStore key prefixes
var (
	ParamsKey = []byte{0x01}

	// JobKeyPrefix is the prefix for job records, keyed by big-endian id
	JobKeyPrefix = []byte{0x10}

	// NextJobIDKey holds the monotonic job id counter
	NextJobIDKey = []byte{0x11}

	// Secondary indexes: requester/provider/status -> job id
	JobByRequesterKeyPrefix = []byte{0x20}
	JobByProviderKeyPrefix  = []byte{0x21}
	JobByStatusKeyPrefix    = []byte{0x22}
)

// JobKey returns the store key for a job id
func JobKey(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(JobKeyPrefix, bz...)
}

// JobByRequesterKey returns the requester index key for a job
func JobByRequesterKey(requester string, id uint64) []byte {
	key := append(JobByRequesterKeyPrefix, []byte(requester)...)
	key = append(key, 0x00)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(key, bz...)
}

// JobByRequesterIteratorKey returns the prefix covering all jobs of a requester
func JobByRequesterIteratorKey(requester string) []byte {
	key := append(JobByRequesterKeyPrefix, []byte(requester)...)
	return append(key, 0x00)
}

// JobByProviderKey returns the provider index key for a job
func JobByProviderKey(provider string, id uint64) []byte {
	key := append(JobByProviderKeyPrefix, []byte(provider)...)
	key = append(key, 0x00)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(key, bz...)
}

// JobByProviderIteratorKey returns the prefix covering all jobs of a provider
func JobByProviderIteratorKey(provider string) []byte {
	key := append(JobByProviderKeyPrefix, []byte(provider)...)
	return append(key, 0x00)
}

// JobByStatusKey returns the status index key for a job
func JobByStatusKey(status JobStatus, id uint64) []byte {
	key := append(JobByStatusKeyPrefix, byte(status))
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(key, bz...)
}

// JobByStatusIteratorKey returns the prefix covering all jobs in a status
func JobByStatusIteratorKey(status JobStatus) []byte {
	return append(JobByStatusKeyPrefix, byte(status))
}

// JobIDFromIndexKey extracts the job id from the tail of an index key
func JobIDFromIndexKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key[len(key)-8:])
}
