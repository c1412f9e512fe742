package task

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/kvstore"
)

func TestSortByTitleIsByteOrder(t *testing.T) {
	in := []Task{{Title: "banana", ID: 1}, {Title: "Apple", ID: 2}, {Title: "cherry", ID: 3}}

	got := SortByTitle(in)
	assert.Equal(t, []Task{{Title: "Apple", ID: 2}, {Title: "banana", ID: 1}, {Title: "cherry", ID: 3}}, got)
	assert.Equal(t, "banana", in[0].Title, "input must not be reordered")
}

func TestSortByTitleEmpty(t *testing.T) {
	got := SortByTitle(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterIgnoresCase(t *testing.T) {
	tasks := []Task{{Title: "Buy milk", ID: 1}, {Title: "Walk dog", ID: 2}}

	assert.Equal(t, []Task{{Title: "Buy milk", ID: 1}}, Filter(tasks, "milk"))
	assert.Equal(t, []Task{{Title: "Buy milk", ID: 1}}, Filter(tasks, "MILK"))
	assert.Equal(t, tasks, Filter(tasks, ""))
	assert.Empty(t, Filter(tasks, "cat"))
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank("   \t"))
	assert.False(t, Blank(" x "))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tasks := []Task{{Title: "A", ID: 7}, {Title: "B \"quoted\"", ID: 0}}

	raw, err := Encode(tasks)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"A","id":7},{"title":"B \"quoted\"","id":0}]`, raw)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeRejectsInvalidPayloads(t *testing.T) {
	for _, raw := range []string{
		"not json",
		"null",
		`{"title":"A","id":1}`,
		`[{"title":"A"}]`,
		`[{"title":"A","id":1.5}]`,
		`[{"title":3,"id":1}]`,
	} {
		_, err := Decode(raw)
		assert.Error(t, err, "payload %s", raw)
	}
}

func TestDecodeSchemaErrorNamesField(t *testing.T) {
	_, err := Decode(`[{"title":"A","id":"x"}]`)
	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "/0/id", se.Path)
}

func TestKVStoreRoundTrip(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewKVStore(kv, "tasks")

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	tasks := []Task{{Title: "A", ID: 1}, {Title: "B", ID: 2}}
	require.NoError(t, s.Save(tasks))
	got, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tasks, got)

	require.NoError(t, s.Clear())
	_, present, err := kv.Get("tasks")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestKVStoreCorruptValue(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set("tasks", "{oops"))

	_, _, err := NewKVStore(kv, "tasks").Load()
	assert.Error(t, err)
}

func TestSequentialIDs(t *testing.T) {
	var gen Sequential
	assert.Equal(t, 0, gen.Next(nil))
	assert.Equal(t, 43, gen.Next([]Task{{ID: 5}, {ID: 42}, {ID: 3}}))
}

func TestRandomIDsStayInRange(t *testing.T) {
	gen := Random{Rand: rand.New(rand.NewPCG(1, 2))}
	for i := 0; i < 500; i++ {
		id := gen.Next(nil)
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, RandomIDLimit)
	}
}

func TestNewIDGenerator(t *testing.T) {
	assert.IsType(t, Random{}, NewIDGenerator("random"))
	assert.IsType(t, Sequential{}, NewIDGenerator("sequential"))
	assert.IsType(t, Sequential{}, NewIDGenerator(""))
}

func TestMemoryStoreCountsWrites(t *testing.T) {
	s := NewMemoryStore(Task{Title: "A", ID: 1})
	require.NoError(t, s.Save([]Task{}))
	require.NoError(t, s.Clear())

	assert.Equal(t, 1, s.Saves)
	assert.Equal(t, 1, s.Clears)
	_, ok := s.Stored()
	assert.False(t, ok)
}
