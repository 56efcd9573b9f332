package domain

import "errors"

var (
	MessageEndpointNotFound   = "Endpoint non trovato"
	MessageFailedBodyRequest  = "Corpo della richiesta non valido"
	MessageFailedStoreFailure = "Errore interno del server"

	ErrRecordNotFound = errors.New("record not found")
	ErrNameRequired   = errors.New("name is required")
)
