package service

import (
	"hash/fnv"
	"sync"
)

const lockShards = 64

// keyedMutex serializes multi-step read-modify-write sequences per owner.
// Striped so the map of owners never grows; two owners hashing to the same
// shard merely wait on each other.
type keyedMutex struct {
	shards [lockShards]sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &k.shards[h.Sum32()%lockShards]
	m.Lock()
	return m.Unlock
}
