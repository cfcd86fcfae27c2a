package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Put("b", 1)
	m.Put("a", 2)
	m.Put("c", 3)
	m.Put("b", 4)
	assert.Equal(t, []int{4, 2, 3}, m.Values())
	assert.False(t, m.PutIfAbsent("a", 9))
	assert.True(t, m.PutIfAbsent("d", 5))

	v, ok := m.Update("a", func(v int) int { return v + 10 })
	assert.True(t, ok)
	assert.Equal(t, 12, v)
	_, ok = m.Update("missing", func(v int) int { return v })
	assert.False(t, ok)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, 3, m.Len())

	var keys []string
	m.Range(func(key string, _ int) bool {
		keys = append(keys, key)
		return key != "c"
	})
	assert.Equal(t, []string{"b", "c"}, keys)
}
