package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveIterations(t *testing.T) {
	tests := []struct {
		name    string
		flagSet bool
		flagVal int
		cfgVal  int
		want    int
	}{
		{
			name:    "configured value used when flag untouched",
			flagVal: 5,
			cfgVal:  9,
			want:    9,
		},
		{
			name:    "explicit flag wins over config",
			flagSet: true,
			flagVal: 3,
			cfgVal:  9,
			want:    3,
		},
		{
			name:    "explicit flag wins even at the default value",
			flagSet: true,
			flagVal: 5,
			cfgVal:  9,
			want:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveIterations(tt.flagSet, tt.flagVal, tt.cfgVal))
		})
	}
}
