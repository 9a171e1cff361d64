package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
)

const (
	// GoogleCertURL publishes the certificates signing firebase ID tokens
	GoogleCertURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

	defaultCertMaxAge = time.Hour
	defaultTimeout    = 5 * time.Second
)

// KeySource - provides the public keys of a token issuer indexed by key id
type KeySource interface {
	PublicKeys(ctx context.Context) (map[string]*rsa.PublicKey, error)
}

// StaticKeys is a KeySource with a fixed key set
type StaticKeys map[string]*rsa.PublicKey

func (s StaticKeys) PublicKeys(context.Context) (map[string]*rsa.PublicKey, error) {
	return s, nil
}

type certSource struct {
	url    string
	client *http.Client

	mu     sync.Mutex
	keys   map[string]*rsa.PublicKey
	expiry time.Time
}

// PublicKeys returns the cached keys until the cache lifetime announced by the
// issuer runs out. When a refresh fails the stale keys keep being served.
func (c *certSource) PublicKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys != nil && time.Now().Before(c.expiry) {
		return c.keys, nil
	}

	keys, maxAge, err := c.fetch(ctx)
	if err != nil {
		if c.keys != nil {
			log.WithField("prefix", logPrefix).WithError(err).Warn("refresh certificates, serving stale keys")
			return c.keys, nil
		}
		return nil, err
	}

	c.keys = keys
	c.expiry = time.Now().Add(maxAge)
	return keys, nil
}

func (c *certSource) fetch(ctx context.Context) (map[string]*rsa.PublicKey, time.Duration, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"url":    c.url,
	}).Info("fetch signing certificates")

	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("%w: certificate endpoint returned %d", ErrUnavailable, resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return nil, 0, fmt.Errorf("%w: decode certificates: %s", ErrUnavailable, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, cert := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cert))
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"kid":    kid,
				"error":  err,
			}).Warn("skip unparsable certificate")
			continue
		}
		keys[kid] = key
	}

	if len(keys) == 0 {
		return nil, 0, fmt.Errorf("%w: no usable certificate", ErrUnavailable)
	}

	return keys, cacheMaxAge(resp.Header.Get("Cache-Control")), nil
}

// cacheMaxAge reads max-age out of a Cache-Control header
func cacheMaxAge(header string) time.Duration {
	for _, directive := range strings.Split(header, ",") {
		directive = strings.TrimSpace(directive)
		if !strings.HasPrefix(directive, "max-age=") {
			continue
		}

		seconds, err := strconv.Atoi(strings.TrimPrefix(directive, "max-age="))
		if err != nil || seconds <= 0 {
			break
		}
		return time.Duration(seconds) * time.Second
	}

	return defaultCertMaxAge
}

// NewCertSource - KeySource backed by an x509 certificate endpoint. An empty
// url uses GoogleCertURL.
func NewCertSource(url string, client *http.Client) KeySource {
	if url == "" {
		url = GoogleCertURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &certSource{
		url:    url,
		client: client,
	}
}
