package identity

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	jwt "github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
)

const (
	firebaseIssuerPrefix = "https://securetoken.google.com/"
	maxSubjectLength     = 128
)

var (
	ErrEmptyProjectID = fmt.Errorf("empty firebase project id")
)

// firebaseClaims - claims carried by a firebase ID token
type firebaseClaims struct {
	jwt.StandardClaims
	AuthTime int64 `json:"auth_time"`
}

func (c firebaseClaims) Valid() error {
	if err := c.StandardClaims.Valid(); err != nil {
		return err
	}

	if c.AuthTime > jwt.TimeFunc().Unix() {
		return fmt.Errorf("token authenticated in the future")
	}

	return nil
}

type firebase struct {
	projectID string
	keys      KeySource
}

// Verify checks a firebase ID token the way the firebase admin SDK does and
// returns the uid of the signed in user
func (f firebase) Verify(ctx context.Context, token string) (string, error) {
	claims := &firebaseClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodRS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("missing key id")
		}

		keys, err := f.keys.PublicKeys(ctx)
		if err != nil {
			return nil, err
		}

		key, ok := keys[kid]
		if !ok {
			return nil, fmt.Errorf("unknown key id %q", kid)
		}
		return key, nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Inner != nil && errors.Is(ve.Inner, ErrUnavailable) {
			log.WithField("prefix", logPrefix).WithError(ve.Inner).Error("fetch signing keys")
			return "", ve.Inner
		}

		log.WithField("prefix", logPrefix).Debugf("reject token: %s", err)
		return "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if !claims.VerifyAudience(f.projectID, true) {
		return "", fmt.Errorf("%w: unexpected audience %q", ErrInvalidToken, claims.Audience)
	}

	if !claims.VerifyIssuer(firebaseIssuerPrefix+f.projectID, true) {
		return "", fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}

	if claims.Subject == "" || len(claims.Subject) > maxSubjectLength {
		return "", fmt.Errorf("%w: invalid subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}

// NewFirebase - new Verifier for ID tokens issued to a firebase project
func NewFirebase(projectID string, keys KeySource) (Verifier, error) {
	if projectID == "" {
		return nil, ErrEmptyProjectID
	}

	return &firebase{
		projectID: projectID,
		keys:      keys,
	}, nil
}

// ProjectIDFromServiceKey reads the project id out of a base64 encoded
// service account key
func ProjectIDFromServiceKey(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode service key: %w", err)
	}

	var key struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(decoded, &key); err != nil {
		return "", fmt.Errorf("parse service key: %w", err)
	}

	if key.ProjectID == "" {
		return "", ErrEmptyProjectID
	}

	return key.ProjectID, nil
}
