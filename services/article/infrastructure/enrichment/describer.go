// Package enrichment produces short technical descriptions of client part
// references. Describers never fail: every error collapses to one of the
// fixed Description* strings so callers can store the result as-is.
package enrichment

import "context"

// Fixed results returned instead of errors.
const (
	DescriptionUnavailable = "Servicio AI no disponible sin API Key."
	DescriptionEmpty       = "No se pudo generar descripción."
	DescriptionFailed      = "Error al analizar referencia."
)

// Describer turns a client reference code and client name into a description.
type Describer interface {
	Describe(ctx context.Context, clientReferenceCode, clientName string) string
}

// Unavailable is the Describer used when no API key is configured.
type Unavailable struct{}

func (Unavailable) Describe(context.Context, string, string) string {
	return DescriptionUnavailable
}
