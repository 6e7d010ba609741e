package ecs

// Map is a fixed-capacity open-addressing hash map from a 64-bit key to V.
//
// Collisions are resolved by linear probing. Removal uses backward-shift
// deletion: entries that probed past the freed bucket are moved back toward
// their home bucket, so every remaining key stays reachable from its home
// without tombstones.
type Map[V any] struct {
	buckets []bucket[V]
	size    int
}

type bucket[V any] struct {
	key   uint64
	value V
	used  bool
}

// NewMap creates an empty map with room for exactly capacity keys.
func NewMap[V any](capacity int) Map[V] {
	if capacity <= 0 {
		Violate("NewMap", "capacity must be positive, got %d", capacity)
	}
	return Map[V]{buckets: make([]bucket[V], capacity)}
}

// mix64 is the splitmix64 finalizer. Entity IDs are already random but slot
// numbers used as keys are sequential, so the home bucket needs scrambling.
func mix64(k uint64) uint64 {
	k ^= k >> 30
	k *= 0xbf58476d1ce4e5b9
	k ^= k >> 27
	k *= 0x94d049bb133111eb
	k ^= k >> 31
	return k
}

func (m *Map[V]) home(key uint64) int {
	return int(mix64(key) % uint64(len(m.buckets)))
}

// find returns the bucket holding key, or -1.
func (m *Map[V]) find(key uint64) int {
	n := len(m.buckets)
	i := m.home(key)
	for probes := 0; probes < n; probes++ {
		b := &m.buckets[i]
		if !b.used {
			return -1
		}
		if b.key == key {
			return i
		}
		i++
		if i == n {
			i = 0
		}
	}
	return -1
}

// Add inserts key. Adding to a full map or adding a present key is a
// contract violation.
func (m *Map[V]) Add(key uint64, value V) {
	if m.size == len(m.buckets) {
		Violate("Map.Add", "map is at capacity %d", len(m.buckets))
	}

	n := len(m.buckets)
	i := m.home(key)
	for m.buckets[i].used {
		if m.buckets[i].key == key {
			Violate("Map.Add", "key %#x already present", key)
		}
		i++
		if i == n {
			i = 0
		}
	}

	m.buckets[i] = bucket[V]{key: key, value: value, used: true}
	m.size++
}

// Remove deletes key, which must be present.
func (m *Map[V]) Remove(key uint64) {
	i := m.find(key)
	if i < 0 {
		Violate("Map.Remove", "key %#x not present", key)
	}

	n := len(m.buckets)
	m.buckets[i] = bucket[V]{}
	m.size--

	// Shift the rest of the cluster back over the hole.
	j := i
	for {
		j++
		if j == n {
			j = 0
		}
		if !m.buckets[j].used {
			return
		}

		h := m.home(m.buckets[j].key)
		// The entry at j may stay only if its home lies cyclically in (i, j].
		var stays bool
		if i <= j {
			stays = i < h && h <= j
		} else {
			stays = i < h || h <= j
		}
		if stays {
			continue
		}

		m.buckets[i] = m.buckets[j]
		m.buckets[j] = bucket[V]{}
		i = j
	}
}

// Get returns the value for key, which must be present.
func (m *Map[V]) Get(key uint64) V {
	i := m.find(key)
	if i < 0 {
		Violate("Map.Get", "key %#x not present", key)
	}
	return m.buckets[i].value
}

// Set overwrites the value for key, which must be present.
func (m *Map[V]) Set(key uint64, value V) {
	i := m.find(key)
	if i < 0 {
		Violate("Map.Set", "key %#x not present", key)
	}
	m.buckets[i].value = value
}

// Lookup returns the value for key and whether it was present.
func (m *Map[V]) Lookup(key uint64) (V, bool) {
	i := m.find(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return m.buckets[i].value, true
}

// Contains reports whether key is present.
func (m *Map[V]) Contains(key uint64) bool {
	return m.find(key) >= 0
}

// Clear removes every key.
func (m *Map[V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

func (m *Map[V]) Len() int    { return m.size }
func (m *Map[V]) Cap() int    { return len(m.buckets) }
func (m *Map[V]) Full() bool  { return m.size == len(m.buckets) }
func (m *Map[V]) Empty() bool { return m.size == 0 }
