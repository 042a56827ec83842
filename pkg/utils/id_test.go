package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "0b9f3c1e-5d7a-4c2b-9e61-3a8f2d4c7b10", want: true},
		{id: "0B9F3C1E-5D7A-4C2B-9E61-3A8F2D4C7B10", want: true},
		{id: ""},
		{id: "p1"},
		{id: "0b9f3c1e5d7a4c2b9e613a8f2d4c7b10"},
		{id: "{0b9f3c1e-5d7a-4c2b-9e61-3a8f2d4c7b10}"},
		{id: "urn:uuid:0b9f3c1e-5d7a-4c2b-9e61-3a8f2d4c7b10"},
		{id: "0b9f3c1e-5d7a-4c2b-9e61-3a8f2d4c7bzz"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.id))
		})
	}
}
