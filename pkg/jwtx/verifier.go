package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Verifier validates a JWT and gives you back the claims if it's legit.
// Signature and expiry checking is delegated to the underlying token library;
// this wrapper only pins the algorithm and maps errors to our sentinels.
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewVerifier creates an HS256 verifier for the shared secret. An empty issuer
// means "don't enforce the iss claim".
func NewVerifier(secret, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Verifier{secret: []byte(secret), issuer: issuer}, nil
}

// WithLeeway returns a copy of the verifier that tolerates the given clock
// skew when validating exp/nbf. Because time sync is never perfect.
func (v *Verifier) WithLeeway(leeway time.Duration) *Verifier {
	cp := *v
	cp.leeway = leeway
	return &cp
}

// Verify parses the compact token, checks the HS256 signature and the
// registered time claims, and returns the decoded claims.
func (v *Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.leeway > 0 {
		opts = append(opts, jwt.WithLeeway(v.leeway))
	}

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		// WithValidMethods already rejects foreign algorithms; this keyfunc
		// only hands back the shared secret.
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if !parsed.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// mapParseError converts token library errors into our sentinel errors so
// callers can use errors.Is without importing the library.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrInvalidClaim
	}
}
