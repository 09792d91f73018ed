package respond_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkpress/internal/handler/http/respond"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "DSN password masked",
			in:   "dial postgres://app:s3cret@db:5432/blog failed",
			want: "dial postgres://app:****@db:5432/blog failed",
		},
		{
			name: "credential pair masked",
			in:   "smtp auth failed: password=hunter2 rejected",
			want: "smtp auth failed: password=**** rejected",
		},
		{
			name: "plain message untouched",
			in:   "connection refused",
			want: "connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, respond.SanitizeError(errors.New(tt.in)))
		})
	}
}

func TestSanitizeError_Nil(t *testing.T) {
	assert.Equal(t, "", respond.SanitizeError(nil))
}
