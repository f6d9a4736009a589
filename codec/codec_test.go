package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string      `json:"name" yaml:"name" msgpack:"name"`
	Coords [][]float64 `json:"coords" yaml:"coords" msgpack:"coords"`
	Size   int         `json:"size" yaml:"size" msgpack:"size"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	c, ok := ByName("yml")
	require.True(t, ok)
	assert.Equal(t, "yaml", c.Name())

	_, ok = ByName("xml")
	assert.False(t, ok)
}

func TestCodecs(t *testing.T) {
	in := sample{Name: "Cluster 0", Coords: [][]float64{{0, 0, 0.5}, {10, 10, 10.5}}, Size: 5}

	for _, c := range []Codec{JSON{}, GoJSON{}, YAML{}, MsgPack{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out sample
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSONCompatibility(t *testing.T) {
	in := sample{Name: "x", Coords: [][]float64{{1, 2}}, Size: 1}

	a, err := JSON{}.Marshal(in)
	require.NoError(t, err)
	b, err := GoJSON{}.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))

	appended, err := GoJSON{}.Append([]byte("prefix:"), in)
	require.NoError(t, err)
	assert.Equal(t, "prefix:"+string(b), string(appended))
}

func TestMustMarshal(t *testing.T) {
	assert.NotEmpty(t, MustMarshal(nil, map[string]int{"a": 1}))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
