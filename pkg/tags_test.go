package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTags(t *testing.T) {
	tests := []struct {
		jobTitle string
		want     string
	}{
		{"Backend Engineer", "backend,engineer"},
		{"Site Reliability Engineer", "site,reliability,engineer"},
		{"  Data   Scientist  ", "data,scientist"},
		{"C++ Developer (Sr.)", "c,developer,sr"},
		{"", "general"},
		{"!!!", "general"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultTags(tt.jobTitle), "jobTitle=%q", tt.jobTitle)
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"go,concurrency", "go,concurrency"},
		{" go , concurrency ", "go,concurrency"},
		{"go,,concurrency,", "go,concurrency"},
		{" , , ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTags(tt.in), "in=%q", tt.in)
	}
}
