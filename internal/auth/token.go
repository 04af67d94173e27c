package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Download tokens gate the PDF export endpoint. The export link is a plain
// anchor tag, so the browser cannot attach the Authorization header; the
// client first mints a short-lived token over the authenticated API and
// puts it in the query string instead.
const downloadTokenTTL = 5 * time.Minute

// NewDownloadToken signs a short-lived token tying a download to a uid.
func NewDownloadToken(secret []byte, uid string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(downloadTokenTTL).Unix(),
	})
	return token.SignedString(secret)
}

// ParseDownloadToken validates a download token and returns the uid it was
// minted for.
func ParseDownloadToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("token missing uid claim")
	}
	return uid, nil
}
