package transaction

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

// linkDocument is the JSONB shape of transactions.link.
type linkDocument struct {
	TripID          string    `json:"tripId"`
	TripName        string    `json:"tripName"`
	TripDestination *string   `json:"tripDestination"`
	Confidence      float64   `json:"confidence"`
	Method          string    `json:"method"`
	Reasoning       *string   `json:"reasoning,omitempty"`
	LinkedAt        time.Time `json:"linkedAt"`
}

// suggestionDocument is the JSONB shape of transactions.suggestion.
type suggestionDocument struct {
	TripID          string    `json:"tripId"`
	TripName        string    `json:"tripName"`
	TripDestination *string   `json:"tripDestination"`
	Confidence      float64   `json:"confidence"`
	Reasoning       *string   `json:"reasoning,omitempty"`
	Status          string    `json:"status"`
	SuggestedAt     time.Time `json:"suggestedAt"`
}

// encodeLink returns nil (SQL NULL) for a nil link, otherwise the JSON text.
func encodeLink(l *domain.TripLink) (any, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(linkDocument{
		TripID:          l.TripID,
		TripName:        l.TripName,
		TripDestination: l.TripDestination,
		Confidence:      l.Confidence,
		Method:          string(l.Method),
		Reasoning:       l.Reasoning,
		LinkedAt:        l.LinkedAt.UTC(),
	})
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func encodeSuggestion(s *domain.TripSuggestion) (any, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(suggestionDocument{
		TripID:          s.TripID,
		TripName:        s.TripName,
		TripDestination: s.TripDestination,
		Confidence:      s.Confidence,
		Reasoning:       s.Reasoning,
		Status:          string(s.Status),
		SuggestedAt:     s.SuggestedAt.UTC(),
	})
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func decodeLink(raw []byte) (*domain.TripLink, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc linkDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &domain.TripLink{
		TripID:          doc.TripID,
		TripName:        doc.TripName,
		TripDestination: doc.TripDestination,
		Confidence:      doc.Confidence,
		Method:          domain.LinkMethod(doc.Method),
		Reasoning:       doc.Reasoning,
		LinkedAt:        doc.LinkedAt,
	}, nil
}

func decodeSuggestion(raw []byte) (*domain.TripSuggestion, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc suggestionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &domain.TripSuggestion{
		TripID:          doc.TripID,
		TripName:        doc.TripName,
		TripDestination: doc.TripDestination,
		Confidence:      doc.Confidence,
		Reasoning:       doc.Reasoning,
		Status:          domain.SuggestionStatus(doc.Status),
		SuggestedAt:     doc.SuggestedAt,
	}, nil
}
