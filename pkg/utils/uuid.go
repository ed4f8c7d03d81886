package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o código curto usado como código público da reserva
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
