// internal/models/certificate.go
package models

import "time"

// Certificate is a service-dog certificate as shown by the verification
// page.
type Certificate struct {
	ID          string    `json:"certificateId"`
	DogName     string    `json:"dogName"`
	HandlerName string    `json:"handlerName"`
	IssuedOn    time.Time `json:"issuedOn"`
	ExpiresOn   time.Time `json:"expiresOn"`
	Revoked     bool      `json:"revoked"`
	Valid       bool      `json:"valid"`
}
