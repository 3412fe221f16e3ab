package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/medilink/api/internal/testutil"
)

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	a := New(Options{JWTSecret: "test-secret"})

	hash, err := a.HashPassword("correct horse battery staple")
	testutil.IsNil(t, err, "hashing succeeds")
	testutil.Assert(t, true, hash != "correct horse battery staple", "hash is not the plaintext")

	testutil.Assert(t, true, a.ComparePassword(hash, "correct horse battery staple"), "right password matches")
	testutil.Assert(t, false, a.ComparePassword(hash, "wrong password"), "wrong password rejected")
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	a := New(Options{JWTSecret: "test-secret"})

	token, err := a.SignJWT(&JWTClaimUser{
		UserID:   "62f0c16c2f0e4a4db12f0c16",
		Username: "dispatcher",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	testutil.IsNil(t, err, "signing succeeds")

	claims := &JWTClaimUser{}

	_, err = a.VerifyJWT(token, claims)
	testutil.IsNil(t, err, "verification succeeds")
	testutil.Assert(t, "62f0c16c2f0e4a4db12f0c16", claims.UserID, "user id survives")
	testutil.Assert(t, "dispatcher", claims.Username, "username survives")
	testutil.Assert(t, "admin", claims.Role, "role survives")
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a := New(Options{JWTSecret: "test-secret"})
	b := New(Options{JWTSecret: "other-secret"})

	token, err := a.SignJWT(&JWTClaimUser{UserID: "x"})
	testutil.IsNil(t, err, "signing succeeds")

	_, err = b.VerifyJWT(token, &JWTClaimUser{})
	testutil.IsNotNil(t, err, "foreign secret fails verification")
}

func TestJWTRejectsExpired(t *testing.T) {
	t.Parallel()

	a := New(Options{JWTSecret: "test-secret"})

	token, err := a.SignJWT(&JWTClaimUser{
		UserID: "x",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	testutil.IsNil(t, err, "signing succeeds")

	_, err = a.VerifyJWT(token, &JWTClaimUser{})
	testutil.IsNotNil(t, err, "expired token fails verification")
}
