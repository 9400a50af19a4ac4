package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto, usado para marcar snapshots do
// dataset nos logs e no status da cron de recarga.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
