package igclient

import (
	"net/url"
	"strings"
)

// vírgula fica literal para manter listas como metric=a,b
var valueEscaper = strings.NewReplacer("%2C", ",")

func escapeValue(v string) string {
	return valueEscaper.Replace(url.QueryEscape(v))
}

type param struct {
	key   string
	value string
}

// Params mantém a ordem de inserção dos parâmetros de query.
// url.Values ordena as chaves no Encode e a ordem aqui faz parte do contrato.
type Params struct {
	items []param
}

func NewParams() *Params {
	return &Params{}
}

func (p *Params) Add(key, value string) *Params {
	p.items = append(p.items, param{key: key, value: value})
	return p
}

// AddIf adiciona somente valores não vazios
func (p *Params) AddIf(key, value string) *Params {
	if value == "" {
		return p
	}
	return p.Add(key, value)
}

func (p *Params) Has(key string) bool {
	if p == nil {
		return false
	}
	for _, it := range p.items {
		if it.key == key {
			return true
		}
	}
	return false
}

func (p *Params) Get(key string) string {
	if p == nil {
		return ""
	}
	for _, it := range p.items {
		if it.key == key {
			return it.value
		}
	}
	return ""
}

func (p *Params) Encode() string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for i, it := range p.items {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(it.key))
		sb.WriteByte('=')
		sb.WriteString(escapeValue(it.value))
	}
	return sb.String()
}
