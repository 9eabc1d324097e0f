package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idSize     = 10
)

// GenerateID gera identificadores curtos para snapshots do ranking
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idSize)
}
