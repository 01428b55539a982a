package mapping

import (
	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:       d.EntryID,
		Summary:       d.Summary,
		TotalAmount:   d.TotalAmount,
		CreatedAt:     d.CreatedAt,
		Status:        string(d.Status),
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:       m.EntryID,
		Summary:       m.Summary,
		TotalAmount:   m.TotalAmount,
		CreatedAt:     m.CreatedAt,
		Status:        domain.EntryStatus(m.Status),
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
	}
}

// ToDomainEntrySlice converts a slice of model Entries to a slice of domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}

// ToModelSplit converts a domain Split to a model Split
func ToModelSplit(d domain.Split) models.Split {
	return models.Split{
		SplitID:      d.SplitID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		TaxAmount:    d.TaxAmount,
	}
}

// ToDomainSplit converts a model Split to a domain Split
func ToDomainSplit(m models.Split) domain.Split {
	return domain.Split{
		SplitID:      m.SplitID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		TaxAmount:    m.TaxAmount,
	}
}

// ToDomainSplitSlice converts a slice of model Splits to a slice of domain Splits
func ToDomainSplitSlice(ms []models.Split) []domain.Split {
	ds := make([]domain.Split, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSplit(m)
	}
	return ds
}
