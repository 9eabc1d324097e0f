package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 41.91, RoundWithTwoDecimalPlace(41.9136))
	assert.Equal(t, 2.68, RoundWithTwoDecimalPlace(2.675))
	assert.Equal(t, -383.03, RoundWithTwoDecimalPlace(-383.031))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idSize)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1\n}", out)

	out, err = PrettyJson([]byte(`{"b":2}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"b\": 2\n}", out)

	_, err = PrettyJson([]byte(`{`))
	assert.Error(t, err)
}
