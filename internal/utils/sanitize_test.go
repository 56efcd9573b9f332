package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback string
		want     string
	}{
		{"plain string", `"Milk"`, "x", "Milk"},
		{"trims whitespace", `"  Milk  "`, "x", "Milk"},
		{"blank falls back", `"   "`, "previous", "previous"},
		{"empty falls back", `""`, "previous", "previous"},
		{"number formatted", `3.5`, "x", "3.5"},
		{"integer number", `2`, "x", "2"},
		{"bool formatted", `true`, "x", "true"},
		{"null falls back", `null`, "previous", "previous"},
		{"object falls back", `{"a":1}`, "previous", "previous"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringValue(json.RawMessage(tt.raw), tt.fallback))
		})
	}
}

func TestTextValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback string
		want     string
	}{
		{"plain string", `"notes"`, "x", "notes"},
		{"blank stays blank", `"   "`, "x", ""},
		{"empty stays empty", `""`, "x", ""},
		{"number formatted", `42`, "x", "42"},
		{"null becomes blank", `null`, "keep", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextValue(json.RawMessage(tt.raw), tt.fallback))
		})
	}
}

func TestNumberValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback float64
		want     float64
	}{
		{"number", `2.5`, 0, 2.5},
		{"numeric string", `"3"`, 0, 3},
		{"numeric string with spaces", `" 4.5 "`, 0, 4.5},
		{"garbage string falls back", `"abc"`, 7, 7},
		{"bool falls back", `true`, 7, 7},
		{"null coerces to zero", `null`, 7, 0},
		{"negative", `-1`, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberValue(json.RawMessage(tt.raw), tt.fallback))
		})
	}
}

func TestBoolValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"true", `true`, true},
		{"false", `false`, false},
		{"zero", `0`, false},
		{"nonzero", `1`, true},
		{"empty string", `""`, false},
		{"nonempty string", `"yes"`, true},
		{"null", `null`, false},
		{"absent", ``, false},
		{"object", `{"a":1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BoolValue(json.RawMessage(tt.raw)))
		})
	}
}

func TestNullableString(t *testing.T) {
	t.Run("string kept", func(t *testing.T) {
		got := NullableString(json.RawMessage(`" a-ref "`))
		require.NotNil(t, got)
		assert.Equal(t, "a-ref", *got)
	})
	t.Run("number formatted", func(t *testing.T) {
		got := NullableString(json.RawMessage(`12`))
		require.NotNil(t, got)
		assert.Equal(t, "12", *got)
	})
	t.Run("blank clears", func(t *testing.T) {
		assert.Nil(t, NullableString(json.RawMessage(`"  "`)))
	})
	t.Run("null clears", func(t *testing.T) {
		assert.Nil(t, NullableString(json.RawMessage(`null`)))
	})
}
