package mapping

import (
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	"github.com/pocketfin/pocketfin_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:    d.TransactionID,
		UserID:           d.UserID,
		Name:             d.Name,
		Amount:           d.Amount,
		Category:         d.Category,
		TransactionType:  models.TransactionType(d.Type),
		TransactionDate:  d.TransactionDate,
		AccountID:        d.AccountID,
		PaymentMethod:    d.PaymentMethod,
		IsRecurring:      d.IsRecurring,
		NextDueDate:      d.NextDueDate,
		ParentTemplateID: d.ParentTemplateID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.Frequency != "" {
		freq := string(d.Frequency)
		m.Frequency = &freq
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:    m.TransactionID,
		UserID:           m.UserID,
		Name:             m.Name,
		Amount:           m.Amount,
		Category:         m.Category,
		Type:             domain.TransactionType(m.TransactionType),
		TransactionDate:  m.TransactionDate,
		AccountID:        m.AccountID,
		PaymentMethod:    m.PaymentMethod,
		IsRecurring:      m.IsRecurring,
		NextDueDate:      m.NextDueDate,
		ParentTemplateID: m.ParentTemplateID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.Frequency != nil {
		d.Frequency = domain.RecurrenceFrequency(*m.Frequency)
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
