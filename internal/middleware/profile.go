package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const ProfileIDKey contextKey = "profileID"

// ProfileCookieName holds the signed profile token.
const ProfileCookieName = "profile"

// ProfileIssuer mints and verifies profile tokens. A profile plays the role
// of one browser's local storage: it scopes favorites, it does not
// authenticate anyone.
type ProfileIssuer struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewProfileIssuer(secret string, ttl time.Duration, secureCookie bool) (*ProfileIssuer, error) {
	if secret == "" {
		return nil, errors.New("profile secret must not be empty")
	}
	return &ProfileIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secureCookie,
	}, nil
}

// Issue signs a token carrying profileID.
func (p *ProfileIssuer) Issue(profileID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"profile_id": profileID,
		"iat":        now.Unix(),
	}
	if p.ttl > 0 {
		claims["exp"] = now.Add(p.ttl).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Verify returns the profile ID carried by a valid token.
func (p *ProfileIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired profile token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid profile token claims")
	}

	profileID, ok := claims["profile_id"].(string)
	if !ok || profileID == "" {
		return "", errors.New("invalid profile ID in token")
	}
	return profileID, nil
}

// Profile attaches a profile ID to every request, minting a new profile and
// cookie when the request carries none or an invalid one.
func Profile(issuer *ProfileIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var profileID string
			if c, err := r.Cookie(ProfileCookieName); err == nil {
				if id, err := issuer.Verify(c.Value); err == nil {
					profileID = id
				} else {
					slog.Debug("rejecting profile cookie", "error", err)
				}
			}

			if profileID == "" {
				profileID = uuid.New().String()
				token, err := issuer.Issue(profileID)
				if err != nil {
					slog.Error("failed to sign profile token", "error", err)
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				cookie := &http.Cookie{
					Name:     ProfileCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   issuer.secure,
					SameSite: http.SameSiteLaxMode,
				}
				if issuer.ttl > 0 {
					cookie.MaxAge = int(issuer.ttl.Seconds())
				}
				http.SetCookie(w, cookie)
			}

			ctx := context.WithValue(r.Context(), ProfileIDKey, profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetProfileID extracts the profile ID from context
func GetProfileID(ctx context.Context) string {
	profileID, ok := ctx.Value(ProfileIDKey).(string)
	if !ok {
		return ""
	}
	return profileID
}
