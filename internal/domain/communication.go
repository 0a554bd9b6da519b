package domain

import "time"

// CommunicationStatus enumerates workflow states for a communication request.
type CommunicationStatus string

const (
	CommunicationStatusAguardando    CommunicationStatus = "AGUARDANDO"
	CommunicationStatusEmAtendimento CommunicationStatus = "EM_ATENDIMENTO"
	CommunicationStatusCriacao       CommunicationStatus = "CRIACAO"
	CommunicationStatusAprovado      CommunicationStatus = "APROVADO"
	CommunicationStatusReprovado     CommunicationStatus = "REPROVADO"
)

// ValidCommunicationStatus reports whether the value is a known status.
func ValidCommunicationStatus(s CommunicationStatus) bool {
	switch s {
	case CommunicationStatusAguardando, CommunicationStatusEmAtendimento,
		CommunicationStatusCriacao, CommunicationStatusAprovado, CommunicationStatusReprovado:
		return true
	}
	return false
}

// CommunicationItem is a marketing/communication request tied to an event,
// a service catalog entry, and optionally an operator.
type CommunicationItem struct {
	ID           string
	EventID      string
	ServiceID    string
	OperatorID   *string
	DeliveryDate time.Time
	Quantity     int
	Status       CommunicationStatus
	Service      *Service
	Operator     *Operator
	CreatedAt    time.Time
}
