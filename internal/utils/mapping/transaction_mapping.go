package mapping

import (
	"database/sql"
	"time"

	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  d.TransactionID,
		Date:           d.Date,
		Counterparty:   d.Counterparty,
		Project:        toNullString(d.Project),
		ProductService: toNullString(d.ProductService),
		Quantity:       d.Quantity,
		UnitPrice:      d.UnitPrice,
		TotalAmount:    d.TotalAmount,
		TaxRate:        d.TaxRate,
		Status:         string(d.Status),
		UserID:         d.UserID,
	}
	if d.DueDate != nil {
		m.DueDate = sql.NullTime{Time: *d.DueDate, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:  m.TransactionID,
		Date:           m.Date,
		Counterparty:   m.Counterparty,
		Project:        m.Project.String,
		ProductService: m.ProductService.String,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TotalAmount:    m.TotalAmount,
		TaxRate:        m.TaxRate,
		Status:         domain.TransactionStatus(m.Status),
		UserID:         m.UserID,
	}
	if m.DueDate.Valid {
		due := m.DueDate.Time.In(time.UTC)
		d.DueDate = &due
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
