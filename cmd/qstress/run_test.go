package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, split(10, 3))
	assert.Equal(t, []int{0, 0}, split(0, 2))
	assert.Equal(t, []int{1, 1, 0, 0}, split(2, 4))
}

func TestRun(t *testing.T) {
	for _, cfg := range []config{
		{producers: 1, consumers: 1, items: 100, payload: payloadInt},
		{producers: 4, consumers: 8, items: 1000, payload: payloadInt},
		{producers: 8, consumers: 2, items: 1000, payload: payloadUUID},
		{producers: 3, consumers: 3, items: 0, payload: payloadInt},
	} {
		rep, err := run(cfg)
		require.NoError(t, err, "%+v", cfg)
		assert.Equal(t, uint64(cfg.items), rep.consumed)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	for _, cfg := range []config{
		{producers: 0, consumers: 1, items: 1, payload: payloadInt},
		{producers: 1, consumers: 0, items: 1, payload: payloadInt},
		{producers: 1, consumers: 1, items: -1, payload: payloadInt},
		{producers: 1, consumers: 1, items: 1, payload: "json"},
	} {
		_, err := run(cfg)
		assert.Error(t, err, "%+v", cfg)
	}
}

func TestVerify(t *testing.T) {
	produced := []string{"a", "b", "c"}
	assert.NoError(t, verify(produced, [][]string{{"a"}, {"c", "b"}}))
	assert.ErrorContains(t, verify(produced, [][]string{{"a", "a"}, {"b", "c"}}), "twice")
	assert.ErrorContains(t, verify(produced, [][]string{{"a", "b"}}), "never consumed")
	assert.ErrorContains(t, verify(produced, [][]string{{"a", "b", "c", "d"}}), "unknown")
}
