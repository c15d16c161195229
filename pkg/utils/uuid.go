package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Tamanho dos ids de registros; cada busca gera uma linha nova
const idSize = 21

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idSize)
}
