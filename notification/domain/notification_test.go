package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "ChateauMargaux", want: "chateaumargaux"},
		{name: "strips spaces", in: "Quinta do Vale", want: "quintadovale"},
		{name: "strips tabs and newlines", in: "Villa\tNova\n", want: "villanova"},
		{name: "strips unicode whitespace", in: "Weingut Keller", want: "weingutkeller"},
		{name: "whitespace only collapses to empty", in: " \t\n", want: ""},
		{name: "distinct names can collide", in: "QUINTA DOVALE", want: "quintadovale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}
