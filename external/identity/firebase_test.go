package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

const testProjectID = "share-care-test"

func generateKey(t *testing.T) *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	return key
}

func validClaims() firebaseClaims {
	now := time.Now()
	return firebaseClaims{
		StandardClaims: jwt.StandardClaims{
			Audience:  testProjectID,
			Issuer:    firebaseIssuerPrefix + testProjectID,
			Subject:   "user-1",
			IssuedAt:  now.Add(-time.Minute).Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		},
		AuthTime: now.Add(-time.Minute).Unix(),
	}
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims firebaseClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	s, err := token.SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

type failingKeys struct{}

func (failingKeys) PublicKeys(context.Context) (map[string]*rsa.PublicKey, error) {
	return nil, errors.New("connection refused: " + ErrUnavailable.Error())
}

type unavailableKeys struct{}

func (unavailableKeys) PublicKeys(context.Context) (map[string]*rsa.PublicKey, error) {
	return nil, ErrUnavailable
}

func TestNewFirebaseWithoutProject(t *testing.T) {
	v, err := NewFirebase("", StaticKeys{})
	assert.Equal(t, ErrEmptyProjectID, err)
	assert.Nil(t, v)
}

func TestVerifyValidToken(t *testing.T) {
	key := generateKey(t)
	v, err := NewFirebase(testProjectID, StaticKeys{"kid-1": &key.PublicKey})
	assert.NoError(t, err)

	uid, err := v.Verify(context.Background(), signToken(t, key, "kid-1", validClaims()))
	assert.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestVerifyRejectsInvalidTokens(t *testing.T) {
	key := generateKey(t)
	otherKey := generateKey(t)
	v, err := NewFirebase(testProjectID, StaticKeys{"kid-1": &key.PublicKey})
	assert.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = time.Now().Add(-time.Minute).Unix()

	wrongAudience := validClaims()
	wrongAudience.Audience = "another-project"

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "https://example.com/" + testProjectID

	noSubject := validClaims()
	noSubject.Subject = ""

	futureAuth := validClaims()
	futureAuth.AuthTime = time.Now().Add(time.Hour).Unix()

	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
	assert.NoError(t, err)

	cases := map[string]string{
		"expired":         signToken(t, key, "kid-1", expired),
		"wrong audience":  signToken(t, key, "kid-1", wrongAudience),
		"wrong issuer":    signToken(t, key, "kid-1", wrongIssuer),
		"no subject":      signToken(t, key, "kid-1", noSubject),
		"future auth":     signToken(t, key, "kid-1", futureAuth),
		"unknown kid":     signToken(t, key, "kid-2", validClaims()),
		"wrong signature": signToken(t, otherKey, "kid-1", validClaims()),
		"hmac":            hmacToken,
		"garbage":         "not.a.token",
		"empty":           "",
	}

	for name, token := range cases {
		uid, err := v.Verify(context.Background(), token)
		assert.True(t, errors.Is(err, ErrInvalidToken), "%s: %v", name, err)
		assert.Empty(t, uid, name)
	}
}

func TestVerifyKeysUnavailable(t *testing.T) {
	key := generateKey(t)
	v, err := NewFirebase(testProjectID, unavailableKeys{})
	assert.NoError(t, err)

	uid, err := v.Verify(context.Background(), signToken(t, key, "kid-1", validClaims()))
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Empty(t, uid)

	// a plain key source error is a rejected token, not an outage
	v, err = NewFirebase(testProjectID, failingKeys{})
	assert.NoError(t, err)

	_, err = v.Verify(context.Background(), signToken(t, key, "kid-1", validClaims()))
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestProjectIDFromServiceKey(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(`{"type":"service_account","project_id":"share-care"}`))
	projectID, err := ProjectIDFromServiceKey(encoded)
	assert.NoError(t, err)
	assert.Equal(t, "share-care", projectID)

	_, err = ProjectIDFromServiceKey("%%%")
	assert.Error(t, err)

	_, err = ProjectIDFromServiceKey(base64.StdEncoding.EncodeToString([]byte(`{"type":"service_account"}`)))
	assert.Equal(t, ErrEmptyProjectID, err)
}
