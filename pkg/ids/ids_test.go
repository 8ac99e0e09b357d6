package ids_test

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SmartOps-api/pkg/ids"
)

func TestNew_MonotonicoYValido(t *testing.T) {
	prev := ids.New()
	for i := 0; i < 100; i++ {
		next := ids.New()
		_, err := ulid.ParseStrict(next)
		require.NoError(t, err)
		assert.Less(t, prev, next)
		prev = next
	}
}
