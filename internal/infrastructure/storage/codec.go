package storage

import (
	"encoding/json"
	"fmt"

	"AOSocial/internal/domain"
)

func encodeProfile(p domain.Profile) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return string(raw), nil
}

func decodeProfile(blob string) (domain.Profile, error) {
	var p domain.Profile
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}
