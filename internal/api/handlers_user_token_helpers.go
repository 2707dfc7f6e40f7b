package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// userTokenTTL keeps the chosen user bound to the browser for a year, the
// server-side equivalent of a persistent localStorage entry.
const userTokenTTL = 365 * 24 * time.Hour

type userClaims struct {
	UserName string `json:"name"`
	jwt.RegisteredClaims
}

func (handler *Handler) setUserCookie(c *fiber.Ctx, userName string) error {
	token, err := handler.buildToken(userName, userTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     userCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(userTokenTTL),
	})
	return nil
}

func (handler *Handler) clearUserCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     userCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildToken(userName string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = userTokenTTL
	}
	now := time.Now()

	claims := userClaims{
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userName,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (string, error) {
	rawToken := strings.TrimSpace(c.Cookies(userCookieName))
	if rawToken == "" {
		return "", errors.New("missing user cookie")
	}

	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return "", errors.New("token expired")
	}

	userName := strings.TrimSpace(claims.UserName)
	if userName == "" {
		return "", errors.New("empty user name")
	}
	return userName, nil
}
