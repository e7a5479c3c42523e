package viewmodel

import "vehicle-query-service/internal/model"

type Resolution int

const (
	Defaulted Resolution = iota
	Found
)

func (r Resolution) String() string {
	if r == Found {
		return "found"
	}
	return "defaulted"
}

// DocumentMatch is the outcome of looking a document type up in a payload.
// Document is only meaningful when Resolution is Found.
type DocumentMatch struct {
	Resolution Resolution
	Document   model.DocumentPayload
}

// ResolveDocument returns the first entry whose type equals backendType.
// The comparison is exact and case-sensitive.
func ResolveDocument(docs []model.DocumentPayload, backendType string) DocumentMatch {
	for _, doc := range docs {
		if doc.Type == backendType {
			return DocumentMatch{Resolution: Found, Document: doc}
		}
	}
	return DocumentMatch{Resolution: Defaulted}
}
