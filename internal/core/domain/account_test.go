package domain_test

import (
	"testing"

	"github.com/hanjoon-dev/account_manager_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccount_IsClosed(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		want    bool
	}{
		{
			name:    "active account",
			account: domain.Account{Status: domain.AccountStatusActive},
			want:    false,
		},
		{
			name:    "closed account",
			account: domain.Account{Status: domain.AccountStatusClosed},
			want:    true,
		},
		{
			name:    "zero value defaults to not closed",
			account: domain.Account{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.IsClosed())
		})
	}
}
