package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFaceKey(t *testing.T) {
	cases := []struct {
		a, b, c int
		want    FaceKey
	}{
		{0, 1, 2, FaceKey{0, 1, 2}},
		{2, 1, 0, FaceKey{0, 1, 2}},
		{1, 2, 0, FaceKey{0, 1, 2}},
		{5, 3, 9, FaceKey{3, 5, 9}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NewFaceKey(tc.a, tc.b, tc.c), "permutation must canonicalize to the same key")
	}
}

func TestNewEdgeKey(t *testing.T) {
	assert.Equal(t, EdgeKey{1, 4}, NewEdgeKey(1, 4))
	assert.Equal(t, EdgeKey{1, 4}, NewEdgeKey(4, 1))
}
