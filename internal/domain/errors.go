package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrHashtagNotFound = errors.New("hashtag not found")
	ErrRecordNotFound  = errors.New("record not found")
)

// ValidationError indica parâmetros ausentes ou combinação não permitida.
// Sempre retornado antes de qualquer chamada de rede.
type ValidationError struct {
	Field   string
	Message string
	Details map[string]any
	// Missing indica parâmetro obrigatório ausente, não um valor inválido
	Missing bool
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewMissingFieldError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Missing: true}
}

// UpstreamError é uma resposta não-2xx da Graph API
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       any
	// TokenExpired marca o código 190 da Graph API; só um novo token resolve
	TokenExpired bool
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("instagram api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("instagram api error (status %d)", e.StatusCode)
}

// Temporary reporta se vale a pena tentar novamente
func (e *UpstreamError) Temporary() bool {
	if e.TokenExpired {
		return false
	}
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// NetworkError representa falha de conexão ou timeout com a Graph API
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("error connecting to instagram api (%s): %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StorageError indica falha ao gravar ou ler do armazenamento.
// Gravações anteriores do mesmo lote de agregação não são desfeitas.
type StorageError struct {
	Op    string
	Count int
	Err   error
}

func (e *StorageError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("storage %s failed for %d record(s): %v", e.Op, e.Count, e.Err)
	}
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
