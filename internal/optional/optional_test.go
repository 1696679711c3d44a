package optional

import (
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	DueDate    Optional[string] `json:"dueDate"`
	CategoryID Optional[int64]  `json:"categoryId"`
}

func TestUnmarshalTriState(t *testing.T) {
	t.Run("omitted", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.DueDate.Set)
		assert.False(t, p.CategoryID.Set)
	})

	t.Run("explicit null", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null,"categoryId":null}`), &p))
		assert.True(t, p.DueDate.Set)
		assert.False(t, p.DueDate.Valid)
		assert.True(t, p.CategoryID.Set)
		assert.False(t, p.CategoryID.Valid)
	})

	t.Run("value", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2026-03-01","categoryId":7}`), &p))
		assert.True(t, p.DueDate.Set)
		assert.True(t, p.DueDate.Valid)
		assert.Equal(t, "2026-03-01", p.DueDate.Value)
		assert.Equal(t, int64(7), p.CategoryID.Value)
	})
}

func TestMarshal(t *testing.T) {
	out, err := json.Marshal(Some("2026-03-01"))
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-01"`, string(out))

	out, err = json.Marshal(Null[string]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestConstructors(t *testing.T) {
	s := Some(int64(5))
	assert.True(t, s.Set)
	assert.True(t, s.Valid)
	assert.Equal(t, int64(5), s.Value)

	n := Null[int64]()
	assert.True(t, n.Set)
	assert.False(t, n.Valid)
}
