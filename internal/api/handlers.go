package api

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/terraincognita07/kardia/internal/i18n"
	"github.com/terraincognita07/kardia/internal/services"
	"github.com/terraincognita07/kardia/internal/templates"
	"golang.org/x/crypto/hkdf"
)

// signingKeyLabel scopes the derived key to the user cookie so the raw
// SECRET_KEY never signs tokens directly.
const signingKeyLabel = "kardia/user-cookie/v1"

type Handler struct {
	gateway      *services.Gateway
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	templates    map[string]*template.Template
}

type FlashPayload struct {
	UserNameError string `json:"user_name_error,omitempty"`
	SaveError     string `json:"save_error,omitempty"`
}

func NewHandler(gateway *services.Gateway, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if gateway == nil {
		return nil, errors.New("gateway is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if location == nil {
		location = time.Local
	}

	secretKey, err := deriveSigningKey(secret)
	if err != nil {
		return nil, err
	}

	funcMap := template.FuncMap{
		"t": func(messages map[string]string, key string) string {
			return translateMessage(messages, key)
		},
		"optInt": func(value *int) string {
			if value == nil {
				return ""
			}
			return strconv.Itoa(*value)
		},
		"toJSON": func(value any) template.JS {
			serialized, _ := json.Marshal(value)
			return template.JS(serialized)
		},
	}

	parsed := make(map[string]*template.Template)
	pages := []string{
		"welcome",
		"records",
		"form",
	}
	for _, page := range pages {
		tmpl, err := template.New("base").Funcs(funcMap).ParseFS(templates.Files, "base.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}

	return &Handler{
		gateway:      gateway,
		secretKey:    secretKey,
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		templates:    parsed,
	}, nil
}

func deriveSigningKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKeyLabel))
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive signing key: %w", err)
	}
	return key, nil
}
