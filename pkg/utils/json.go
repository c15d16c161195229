package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// PrettyJson formata qualquer valor (ou []byte já serializado) com indentação
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "  "); err != nil {
		return string(buffer)
	}

	return out.String()
}
