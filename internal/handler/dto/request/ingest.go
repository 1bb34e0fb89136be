package request

import (
	"greenrfq/internal/usecase/commands"
)

type IngestRecordRequest struct {
	CompanyName    string   `json:"company_name" binding:"required,max=300"`
	Email          string   `json:"email" binding:"required,email,max=320"`
	Phone          string   `json:"phone" binding:"max=50"`
	Website        string   `json:"website" binding:"max=500"`
	Source         string   `json:"source" binding:"max=100"`
	Categories     []string `json:"categories" binding:"max=50"`
	Certifications []string `json:"certifications" binding:"max=50"`
	Latitude       *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type IngestRequest struct {
	Records []IngestRecordRequest `json:"records" binding:"required,min=1,max=1000,dive"`
}

func (r *IngestRequest) ToRecords() []commands.IngestRecord {
	records := make([]commands.IngestRecord, len(r.Records))
	for i, rec := range r.Records {
		records[i] = commands.IngestRecord{
			CompanyName:    rec.CompanyName,
			Email:          rec.Email,
			Phone:          rec.Phone,
			Website:        rec.Website,
			Source:         rec.Source,
			Categories:     rec.Categories,
			Certifications: rec.Certifications,
			Latitude:       rec.Latitude,
			Longitude:      rec.Longitude,
		}
	}
	return records
}
