package handler

import (
	"time"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

const timestampLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func toParty(r partyRequest) domain.Party {
	return domain.Party{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

func fromParty(p domain.Party) partyResponse {
	return partyResponse{Name: p.Name, Email: p.Email, Phone: p.Phone, Address: p.Address}
}

// toShipmentInfo assumes r passed validation, so the ETA parses.
func toShipmentInfo(r shipmentInfoRequest) domain.ShipmentInfo {
	eta, _ := parseISODate(r.ETA)
	return domain.ShipmentInfo{
		Origin:      r.Origin,
		Destination: r.Destination,
		WeightKg:    r.Weight,
		ETA:         eta,
	}
}

func fromShipmentInfo(s domain.ShipmentInfo) shipmentInfoResponse {
	return shipmentInfoResponse{
		Origin:      s.Origin,
		Destination: s.Destination,
		Weight:      s.WeightKg,
		ETA:         formatTime(s.ETA),
	}
}

func toRegisterInput(r registerPackageRequest) ports.RegisterPackageInput {
	info := toShipmentInfo(r.ShipmentInfo)
	return ports.RegisterPackageInput{
		Sender:      toParty(r.Sender),
		Receiver:    toParty(r.Receiver),
		Origin:      info.Origin,
		Destination: info.Destination,
		WeightKg:    info.WeightKg,
		ETA:         info.ETA,
	}
}

func toDetailsPatch(r updateDetailsRequest) ports.PackageDetailsPatch {
	var patch ports.PackageDetailsPatch
	if r.Sender != nil {
		p := toParty(*r.Sender)
		patch.Sender = &p
	}
	if r.Receiver != nil {
		p := toParty(*r.Receiver)
		patch.Receiver = &p
	}
	if r.ShipmentInfo != nil {
		s := toShipmentInfo(*r.ShipmentInfo)
		patch.ShipmentInfo = &s
	}
	return patch
}

func fromPackage(p *domain.Package) packageResponse {
	history := make([]historyItemResponse, len(p.History))
	for i, h := range p.History {
		history[i] = historyItemResponse{
			Status:      h.Status,
			Location:    h.Location,
			Description: h.Description,
			Timestamp:   formatTime(h.Timestamp),
		}
	}
	return packageResponse{
		TrackingNumber: p.TrackingNumber,
		Sender:         fromParty(p.Sender),
		Receiver:       fromParty(p.Receiver),
		ShipmentInfo:   fromShipmentInfo(p.ShipmentInfo),
		Status:         string(p.Status),
		Location:       p.Location,
		History:        history,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromLocatedPoint(p *ports.LocatedPoint) *coordinatesResponse {
	if p == nil {
		return nil
	}
	return &coordinatesResponse{Lat: p.Lat, Lng: p.Lng, Geohash: p.Geohash}
}

func fromTrackingView(v *ports.TrackingView) trackingResponse {
	history := make([]historyItemResponse, len(v.History))
	for i, h := range v.History {
		history[i] = historyItemResponse{
			Status:      h.Status,
			Location:    h.Location,
			Description: h.Description,
			Timestamp:   formatTime(h.Timestamp),
			Coordinates: fromLocatedPoint(h.Coordinates),
		}
	}
	return trackingResponse{
		TrackingNumber: v.TrackingNumber,
		Sender:         fromParty(v.Sender),
		Receiver:       fromParty(v.Receiver),
		ShipmentInfo:   fromShipmentInfo(v.ShipmentInfo),
		Status:         v.Status,
		Location:       v.Location,
		Coordinates:    fromLocatedPoint(v.Coordinates),
		History:        history,
		RemainingKm:    v.RemainingKm,
	}
}
