package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_UnmarshalNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`12050`), &m))
	assert.Equal(t, Money(12050), m)
}

func TestMoney_UnmarshalString(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"12050"`), &m))
	assert.Equal(t, Money(12050), m)
}

func TestMoney_UnmarshalNullAndEmpty(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Equal(t, Money(0), m)

	m = 99
	require.NoError(t, json.Unmarshal([]byte(`""`), &m))
	assert.Equal(t, Money(0), m)
}

func TestMoney_UnmarshalGarbageRejected(t *testing.T) {
	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"12.50sgd"`), &m))
}

func TestMoney_Display(t *testing.T) {
	assert.Equal(t, "120.50", Money(12050).Display())
	assert.Equal(t, "0.05", Money(5).Display())
}
