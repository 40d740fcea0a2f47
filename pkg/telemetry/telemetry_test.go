package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaders(t *testing.T) {
	h := ParseHeaders("api_key=abc, space_id = s1,broken")
	assert.Equal(t, map[string]string{"api_key": "abc", "space_id": "s1"}, h)
	assert.Empty(t, ParseHeaders(""))
}

func TestSetupDisabledIsNil(t *testing.T) {
	tel, err := Setup(context.Background(), Config{ServiceName: "hiring"})
	require.NoError(t, err)
	assert.Nil(t, tel)
	assert.NoError(t, tel.Shutdown(context.Background()))
}
