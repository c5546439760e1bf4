package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	callerKey        = "caller"
	WalletHashHeader = "X-Wallet-Hash"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Authenticate resolves the caller's wallet hash. With a secret it is the subject of an HS256 bearer token,
// otherwise it is read from the wallet hash header.
func Authenticate(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var caller string
			var err error

			if len(key) == 0 {
				caller = strings.TrimSpace(ctx.Request().Header.Get(WalletHashHeader))
				if caller == "" {
					err = ErrMissingCredentials
				}
			} else {
				caller, err = subject(ctx.Request().Header.Get(echo.HeaderAuthorization), key)
			}

			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			}

			ctx.Set(callerKey, caller)
			return next(ctx)
		}
	}
}

func subject(header string, key []byte) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", ErrMissingCredentials
	}

	token, err := jwt.Parse(raw, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}

func callerFrom(ctx echo.Context) string {
	caller, _ := ctx.Get(callerKey).(string)
	return caller
}
