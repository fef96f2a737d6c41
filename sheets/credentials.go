// sheets/credentials.go - Service-account key decoding
//
// Deployment has shipped the credential blob in several shapes over time:
// raw JSON, base64-wrapped JSON, JSON with literal "\n" escapes inside the
// private key, and JSON wrapped in an extra layer of quotes. Each shape gets
// its own decode strategy; they are tried in order and the first one that
// yields a JSON object wins.
package sheets

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"regexp"
	"strings"
)

// ErrNoCredentials means no key was provided at all.
var ErrNoCredentials = errors.New("no service account key provided")

// ErrBadCredentials means a key was provided but no strategy could decode it.
var ErrBadCredentials = errors.New("service account key could not be decoded")

type decodeStrategy struct {
	name   string
	decode func(key string) ([]byte, bool)
}

var decodeStrategies = []decodeStrategy{
	{"base64", decodeBase64},
	{"direct", decodeDirect},
	{"escaped-newlines", decodeEscapedNewlines},
	{"quoted", decodeQuoted},
}

// ParseServiceAccountKey runs the decode chain and returns the credential
// JSON ready to hand to the API client.
func ParseServiceAccountKey(key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrNoCredentials
	}

	for _, s := range decodeStrategies {
		if raw, ok := s.decode(key); ok {
			log.Printf("🔑 service account key decoded via %s strategy", s.name)
			return raw, nil
		}
	}
	return nil, ErrBadCredentials
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

func decodeBase64(key string) ([]byte, bool) {
	// Base64-wrapped keys are long and contain no JSON punctuation.
	if len(key) <= 100 || !base64Pattern.MatchString(key) {
		return nil, false
	}
	decoded, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, false
	}
	if !isJSONObject(decoded) {
		return nil, false
	}
	return decoded, true
}

func decodeDirect(key string) ([]byte, bool) {
	if !isJSONObject([]byte(key)) {
		return nil, false
	}
	return []byte(key), true
}

func decodeEscapedNewlines(key string) ([]byte, bool) {
	fixed := strings.TrimSpace(strings.ReplaceAll(key, `\n`, "\n"))
	if !isJSONObject([]byte(fixed)) {
		return nil, false
	}
	return []byte(fixed), true
}

func decodeQuoted(key string) ([]byte, bool) {
	unquoted := strings.Trim(key, `"'`)
	if unquoted == key || !isJSONObject([]byte(unquoted)) {
		return nil, false
	}
	return []byte(unquoted), true
}

func isJSONObject(raw []byte) bool {
	var m map[string]any
	return json.Unmarshal(raw, &m) == nil
}
