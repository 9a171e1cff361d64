package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func certificatePEM(t *testing.T, key *rsa.PrivateKey) string {
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken.system.gserviceaccount.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}

	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

func TestCacheMaxAge(t *testing.T) {
	assert.Equal(t, 19800*time.Second, cacheMaxAge("public, max-age=19800, must-revalidate, no-transform"))
	assert.Equal(t, 60*time.Second, cacheMaxAge("max-age=60"))
	assert.Equal(t, defaultCertMaxAge, cacheMaxAge(""))
	assert.Equal(t, defaultCertMaxAge, cacheMaxAge("no-cache"))
	assert.Equal(t, defaultCertMaxAge, cacheMaxAge("max-age=abc"))
}

func TestCertSourceCachesKeys(t *testing.T) {
	key := generateKey(t)
	certs := map[string]string{
		"kid-1":  certificatePEM(t, key),
		"broken": "-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n",
	}

	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_ = json.NewEncoder(w).Encode(certs)
	}))
	defer ts.Close()

	source := NewCertSource(ts.URL, ts.Client())

	keys, err := source.PublicKeys(context.Background())
	assert.NoError(t, err)
	assert.Len(t, keys, 1)
	assert.Equal(t, key.PublicKey.N, keys["kid-1"].N)

	_, err = source.PublicKeys(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCertSourceServesStaleKeys(t *testing.T) {
	cert := certificatePEM(t, generateKey(t))

	var down int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&down) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"kid-1": cert})
	}))
	defer ts.Close()

	source := NewCertSource(ts.URL, ts.Client()).(*certSource)

	_, err := source.PublicKeys(context.Background())
	assert.NoError(t, err)

	// expire the cache and take the endpoint down
	source.expiry = time.Now().Add(-time.Second)
	atomic.StoreInt32(&down, 1)

	keys, err := source.PublicKeys(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, keys, "kid-1")
}

func TestCertSourceUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewCertSource(ts.URL, ts.Client()).PublicKeys(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer empty.Close()

	_, err = NewCertSource(empty.URL, empty.Client()).PublicKeys(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestVerifyWithCertSource(t *testing.T) {
	key := generateKey(t)
	cert := certificatePEM(t, key)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"kid-1": cert})
	}))
	defer ts.Close()

	v, err := NewFirebase(testProjectID, NewCertSource(ts.URL, ts.Client()))
	assert.NoError(t, err)

	uid, err := v.Verify(context.Background(), signToken(t, key, "kid-1", validClaims()))
	assert.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	// the endpoint going away must surface as an outage, not a bad token
	ts.Close()
	v, err = NewFirebase(testProjectID, NewCertSource(ts.URL, &http.Client{Timeout: time.Second}))
	assert.NoError(t, err)

	_, err = v.Verify(context.Background(), signToken(t, key, "kid-1", validClaims()))
	assert.True(t, errors.Is(err, ErrUnavailable))
}
