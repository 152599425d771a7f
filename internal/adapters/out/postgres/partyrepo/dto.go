// Package partyrepo reads the counterparty records owned by other
// modules: customers, companies and import shipments.
package partyrepo

import (
	"time"

	"transport/internal/core/domain/model/party"
)

// CustomerDTO is the database row for a customer.
type CustomerDTO struct {
	Name            string `gorm:"primaryKey"`
	DefaultCurrency string
	DeptAbbr        string
}

// TableName overrides GORM's default naming.
func (CustomerDTO) TableName() string {
	return "customers"
}

// CompanyDTO is the database row for a company.
type CompanyDTO struct {
	Name string `gorm:"primaryKey"`
	Abbr string
}

// TableName overrides GORM's default naming.
func (CompanyDTO) TableName() string {
	return "companies"
}

// ImportDTO is the database row for an import shipment.
type ImportDTO struct {
	Name                string `gorm:"primaryKey"`
	Status              string
	ETA                 *time.Time `gorm:"column:eta"`
	ReferenceFileNumber string
}

// TableName overrides GORM's default naming.
func (ImportDTO) TableName() string {
	return "imports"
}

func customerToDomain(dto CustomerDTO) *party.Customer {
	return &party.Customer{
		Name:            dto.Name,
		DefaultCurrency: dto.DefaultCurrency,
		DeptAbbr:        dto.DeptAbbr,
	}
}

func companyToDomain(dto CompanyDTO) *party.Company {
	return &party.Company{
		Name: dto.Name,
		Abbr: dto.Abbr,
	}
}

func importToDomain(dto ImportDTO) *party.Import {
	return &party.Import{
		Name:                dto.Name,
		Status:              dto.Status,
		ETA:                 dto.ETA,
		ReferenceFileNumber: dto.ReferenceFileNumber,
	}
}
