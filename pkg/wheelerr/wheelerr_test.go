// pkg/wheelerr/wheelerr_test.go

package wheelerr

import (
	"io"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestExpectedErrorClassification(t *testing.T) {
	assert.Nil(t, NewExpectedError(nil))

	err := NewExpectedError(io.EOF)
	assert.True(t, IsExpectedUserError(err))
	assert.ErrorIs(t, err, io.EOF)

	// Wrapping upstream must not lose the marker.
	wrapped := cerr.Wrap(err, "collecting options")
	assert.True(t, IsExpectedUserError(wrapped))

	assert.False(t, IsExpectedUserError(io.EOF))
	assert.False(t, IsExpectedUserError(cerr.New("internal fault")))
}
