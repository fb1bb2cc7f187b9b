package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	s := NewService("secret", time.Hour)

	token, exp, err := s.Issue("owner-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	owner, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", owner)
}

func TestVerifyRejects(t *testing.T) {
	s := NewService("secret", time.Hour)
	good, _, err := s.Issue("owner-1")
	require.NoError(t, err)

	expired := NewService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue("owner-1")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "owner-1", Issuer: issuer})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *Service
		token   string
		wantErr error
	}{
		{name: "empty", svc: s, token: "", wantErr: ErrInvalidToken},
		{name: "garbage", svc: s, token: "not.a.jwt", wantErr: ErrInvalidToken},
		{name: "wrong secret", svc: NewService("other", time.Hour), token: good, wantErr: ErrInvalidToken},
		{name: "expired", svc: s, token: old, wantErr: ErrTokenExpired},
		{name: "alg none", svc: s, token: unsigned, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Verify(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIssueRequiresOwner(t *testing.T) {
	_, _, err := NewService("secret", time.Hour).Issue("")
	assert.ErrorIs(t, err, ErrNoSubject)
}
