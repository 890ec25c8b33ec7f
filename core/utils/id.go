package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateID returns a short URL-safe identifier, used for seating table ids
func GenerateID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 7)
	if err != nil {
		return ""
	}
	return id
}
