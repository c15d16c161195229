package apiErrors

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_006" // Token inválido
	ErrExpiredToken = "AUTH_007" // Token expirado

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recurso
	ErrResourceNotFound = "RES_001"
	ErrConflict         = "RES_002" // Operação já em andamento
	ErrTooManyRequests  = "RATE_001"

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro ao gravar ou ler do armazenamento
	ErrExternalService   = "SRV_003" // Erro na Graph API
	ErrCommunication     = "SRV_004" // Falha de conexão com a Graph API
)

const genericMessage = "An unexpected error occurred"

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrConflict:            http.StatusConflict,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError é o corpo padrão de erro da API
type APIError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado usando o status do código
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	WriteErrorWithStatus(w, StatusFor(code), code, message, details)
}

// WriteErrorWithStatus permite sobrescrever o status, usado para repassar o status da Graph API
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	apiErr := APIError{
		Status:  "error",
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError converte os erros de domínio em resposta HTTP.
// Erros desconhecidos são logados e respondidos com uma mensagem genérica.
func WriteFromError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		upstreamErr   *domain.UpstreamError
		networkErr    *domain.NetworkError
		storageErr    *domain.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		var details any
		if validationErr.Details != nil {
			details = validationErr.Details
		} else if validationErr.Field != "" {
			details = map[string]any{"field": validationErr.Field}
		}
		code := ErrInvalidRequest
		if validationErr.Missing {
			code = ErrMissingRequiredData
		}
		WriteError(w, code, validationErr.Error(), details)

	case errors.As(err, &upstreamErr):
		status := upstreamErr.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		message := upstreamErr.Message
		if message == "" {
			message = "Instagram API error"
		}
		WriteErrorWithStatus(w, status, ErrExternalService, message, upstreamErr.Body)

	case errors.As(err, &networkErr):
		log.ForContext(ctx).WithError(err).Warn("apiErrors: instagram api unreachable")
		WriteError(w, ErrCommunication, "Error connecting to Instagram API", nil)

	case errors.As(err, &storageErr):
		log.ForContext(ctx).WithError(err).Error("apiErrors: storage failure")
		WriteError(w, ErrDatabaseOperation, "Error storing data", nil)

	case errors.Is(err, domain.ErrHashtagNotFound), errors.Is(err, domain.ErrRecordNotFound):
		WriteError(w, ErrResourceNotFound, err.Error(), nil)

	default:
		log.ForContext(ctx).WithError(err).Error("apiErrors: unhandled error")
		WriteError(w, ErrInternalServer, genericMessage, nil)
	}
}

// WriteInternal responde o erro genérico sem detalhes internos
func WriteInternal(w http.ResponseWriter) {
	WriteError(w, ErrInternalServer, genericMessage, nil)
}
