package firebase

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "coupon-app"

type certServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newCertServer(t *testing.T, kid string, pub *rsa.PublicKey) *certServer {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]string{
		kid: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	})
	require.NoError(t, err)

	cs := &certServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(cs.Close)
	return cs
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(phone string) Claims {
	now := time.Now()
	return Claims{
		PhoneNumber: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://securetoken.google.com/" + testProject,
			Audience:  jwt.ClaimStrings{testProject},
			Subject:   "firebase-uid-1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestVerifier_VerifyPhone(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := newCertServer(t, "kid-1", &key.PublicKey)

	expired := validClaims("+911111111111")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAudience := validClaims("+911111111111")
	wrongAudience.Audience = jwt.ClaimStrings{"another-project"}

	tests := []struct {
		name    string
		token   func() string
		want    string
		wantErr error
	}{
		{
			name:  "success: phone extracted",
			token: func() string { return signToken(t, key, "kid-1", validClaims("+911111111111")) },
			want:  "+911111111111",
		},
		{
			name:    "error: token without phone",
			token:   func() string { return signToken(t, key, "kid-1", validClaims("")) },
			wantErr: ErrPhoneNotInToken,
		},
		{
			name:    "error: expired token",
			token:   func() string { return signToken(t, key, "kid-1", expired) },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "error: wrong audience",
			token:   func() string { return signToken(t, key, "kid-1", wrongAudience) },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "error: signed by unknown key",
			token:   func() string { return signToken(t, otherKey, "kid-1", validClaims("+911111111111")) },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "error: unknown kid",
			token:   func() string { return signToken(t, key, "kid-2", validClaims("+911111111111")) },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "error: garbage",
			token:   func() string { return "not.a.token" },
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			v := NewVerifier(testProject, srv.URL, time.Hour)

			got, err := v.VerifyPhone(context.Background(), tt.token())
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifier_CachesCerts(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := newCertServer(t, "kid-1", &key.PublicKey)

	v := NewVerifier(testProject, srv.URL, time.Hour)
	for i := 0; i < 3; i++ {
		_, err := v.VerifyPhone(context.Background(), signToken(t, key, "kid-1", validClaims("+911111111111")))
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), srv.hits.Load())
}
