package interfaces

import "jiyajewellery/internal/domain/entities"

// IDocumentRenderer produces the printable and exportable estimate documents.
type IDocumentRenderer interface {
	EstimatePDF(e entities.Estimate, company CompanyInfo) ([]byte, error)
	EstimatesXLSX(estimates []entities.Estimate) ([]byte, error)
}

// CompanyInfo is printed in the estimate header.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
}
