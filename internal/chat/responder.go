// Package chat is HopeBot: a rule-based responder that maps free text to a
// location and a service type by substring matching, and answers with canned
// listings.
package chat

import (
	"context"
	"fmt"
	"strings"

	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/metrics"
	"hopeconnect/internal/models"
)

const (
	NotUnderstoodMessage = "Sorry, I didn't understand. Tell me which town or city you are in and what you need, for example \"food in Leeds\"."

	outcomeListing       = "listing"
	outcomeLocationOnly  = "location_only"
	outcomeNoListings    = "no_listings"
	outcomeNotUnderstood = "not_understood"
)

// Match is the result of parsing a message. Empty fields mean no match.
type Match struct {
	Location    string
	ServiceType string
}

// Parse finds the first known location and the first known keyword in
// message, case-insensitively.
func Parse(message string) Match {
	lower := strings.ToLower(message)
	var m Match
	for _, loc := range locations {
		if strings.Contains(lower, loc) {
			m.Location = loc
			break
		}
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw.word) {
			m.ServiceType = kw.serviceType
			break
		}
	}
	return m
}

// Respond answers message. A location is required; without a service
// keyword the reply lists what the location offers.
func Respond(message string) models.ChatResponse {
	m := Parse(message)
	if m.Location == "" {
		return models.ChatResponse{Understood: false, Message: NotUnderstoodMessage}
	}

	place := displayName(m.Location)
	available := availableTypes(m.Location)
	if m.ServiceType == "" {
		return models.ChatResponse{
			Understood:            true,
			Location:              m.Location,
			AvailableServiceTypes: available,
			Message:               fmt.Sprintf("I can help with %s in %s. What do you need?", strings.Join(available, ", "), place),
		}
	}

	services := listings[m.Location][m.ServiceType]
	if len(services) == 0 {
		return models.ChatResponse{
			Understood:            true,
			Location:              m.Location,
			ServiceType:           m.ServiceType,
			AvailableServiceTypes: available,
			Message:               fmt.Sprintf("I don't have %s services for %s yet. I can help with %s.", m.ServiceType, place, strings.Join(available, ", ")),
		}
	}

	out := make([]models.ServiceListing, len(services))
	copy(out, services)
	return models.ChatResponse{
		Understood:  true,
		Location:    m.Location,
		ServiceType: m.ServiceType,
		Services:    out,
		Message:     fmt.Sprintf("Here are %s services in %s.", m.ServiceType, place),
	}
}

// Responder wraps Respond with logging and metrics.
type Responder struct {
	logger logger.Logger
}

func NewResponder(log logger.Logger) *Responder {
	return &Responder{logger: log.WithFields(map[string]interface{}{"component": "hopebot"})}
}

func (r *Responder) Respond(ctx context.Context, message string) models.ChatResponse {
	resp := Respond(message)

	outcome := outcomeNotUnderstood
	switch {
	case len(resp.Services) > 0:
		outcome = outcomeListing
	case resp.Understood && resp.ServiceType != "":
		outcome = outcomeNoListings
	case resp.Understood:
		outcome = outcomeLocationOnly
	}
	metrics.ChatQueries.WithLabelValues(outcome).Inc()

	// The message itself may contain personal details and is not logged.
	r.logger.Debug("chat query answered", map[string]interface{}{
		"outcome":     outcome,
		"location":    resp.Location,
		"serviceType": resp.ServiceType,
	})
	return resp
}

func availableTypes(location string) []string {
	var out []string
	for _, st := range ServiceTypes {
		if len(listings[location][st]) > 0 {
			out = append(out, st)
		}
	}
	return out
}

func displayName(location string) string {
	if location == "" {
		return ""
	}
	return strings.ToUpper(location[:1]) + location[1:]
}
