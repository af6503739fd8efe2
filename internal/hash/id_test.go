package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestID_Distinct(t *testing.T) {
	require.NotEqual(t, ID("temp"), ID("Temp"))
	require.NotEqual(t, ID("temp"), ID("temp "))
	require.Equal(t, ID("humidity"), ID("humidity"))
}

func BenchmarkID(b *testing.B) {
	for b.Loop() {
		ID("relative_humidity_percent")
	}
}
