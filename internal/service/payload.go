package service

import (
	"strconv"
	"time"

	"vehicle-query-service/internal/model"
)

// BuildPayload assembles the wire payload for a vehicle, its fines (newest
// first) and its ownership records (most recent first).
func BuildPayload(vehicle *model.Vehicle, fines []model.Fine, history []model.OwnershipRecord) *model.QueryPayload {
	payload := &model.QueryPayload{
		Plate:            vehicle.PlateNumber,
		Make:             vehicle.Make,
		ModelYear:        vehicle.ModelYear,
		VehicleType:      vehicle.VehicleType,
		DisplacementCC:   vehicle.DisplacementCC,
		Documents:        vehicleDocuments(vehicle),
		Fines:            make([]model.FinePayload, 0, len(fines)),
		OwnershipHistory: make([]model.OwnershipPayload, 0, len(history)),
	}

	if vehicle.Owner != nil {
		payload.Owner = &model.OwnerPayload{
			IdentityNumber: vehicle.Owner.IdentityNumber,
			FullName:       vehicle.Owner.FullName,
			Phone:          vehicle.Owner.Phone,
			Email:          vehicle.Owner.Email,
			Address:        vehicle.Owner.Address,
		}
	}

	for _, f := range fines {
		amount := f.Amount.InexactFloat64()
		payload.Fines = append(payload.Fines, model.FinePayload{
			ID:            f.ID.String(),
			Date:          f.IssuedOn.Format(dateLayout),
			ViolationType: f.ViolationType,
			Amount:        &amount,
			Status:        string(f.Status),
		})
	}

	for _, h := range history {
		payload.OwnershipHistory = append(payload.OwnershipHistory, model.OwnershipPayload{
			IdentityNumber: h.IdentityNumber,
			FullName:       ownerName(h),
			From:           strconv.Itoa(h.OwnedFrom.Year()),
			To:             ownedTo(h.OwnedTo),
		})
	}

	return payload
}

func vehicleDocuments(v *model.Vehicle) []model.DocumentPayload {
	docs := []model.DocumentPayload{
		{
			Type:   model.DocumentTypeSOAT,
			Status: deref(v.SoatStatus),
			Expiry: formatDate(v.SoatExpiresOn),
			Value:  strPtr(soatValue),
		},
		{
			Type:   model.DocumentTypeInspection,
			Status: deref(v.InspectionStatus),
			Expiry: formatDate(v.InspectionExpiresOn),
			Value:  strPtr(inspectionValue),
		},
	}
	if v.HasTaxRecord() {
		docs = append(docs, model.DocumentPayload{
			Type:   model.DocumentTypeTax,
			Status: *v.TaxStatus,
			Expiry: formatDate(v.TaxExpiresOn),
			Value:  strPtr(taxValue),
		})
	}
	return docs
}

// ownerName falls back to a label built from the last three digits of the
// cédula when the registry has no name on file.
func ownerName(r model.OwnershipRecord) string {
	if r.FullName != nil && *r.FullName != "" {
		return *r.FullName
	}
	id := r.IdentityNumber
	if len(id) > 3 {
		id = id[len(id)-3:]
	}
	return "Propietario " + id
}

func ownedTo(t *time.Time) string {
	if t == nil {
		return model.OwnershipOpenEnd
	}
	return strconv.Itoa(t.Year())
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
