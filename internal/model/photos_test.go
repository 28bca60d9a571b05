package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotos_Value(t *testing.T) {
	t.Run("nil list is stored as empty array", func(t *testing.T) {
		var photos Photos

		value, err := photos.Value()

		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	})

	t.Run("keeps order", func(t *testing.T) {
		photos := Photos{"combinaison-ionis-front.jpg", "combinaison-ionis-back.jpg"}

		value, err := photos.Value()

		require.NoError(t, err)
		assert.Equal(t, `["combinaison-ionis-front.jpg","combinaison-ionis-back.jpg"]`, value)
	})
}

func TestPhotos_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    Photos
		wantErr bool
	}{
		{"text column", `["a.jpg","b.jpg"]`, Photos{"a.jpg", "b.jpg"}, false},
		{"blob column", []byte(`["a.jpg"]`), Photos{"a.jpg"}, false},
		{"null column", nil, Photos{}, false},
		{"json null", "null", Photos{}, false},
		{"invalid json", `["a.jpg"`, nil, true},
		{"unsupported type", 42, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var photos Photos

			err := photos.Scan(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, photos)
		})
	}
}
