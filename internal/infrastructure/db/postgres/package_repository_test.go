package postgres

import (
	"testing"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

func TestDetailsUpdate(t *testing.T) {
	sql, args := detailsUpdate("SCABC1234567", ports.PackageDetailsPatch{})
	if sql != "" || args != nil {
		t.Fatalf("empty patch must produce no statement, got %q", sql)
	}

	receiver := domain.Party{Name: "Carol"}
	info := domain.ShipmentInfo{Origin: "London", Destination: "Paris"}
	sql, args = detailsUpdate("SCABC1234567", ports.PackageDetailsPatch{Receiver: &receiver, ShipmentInfo: &info})

	want := "UPDATE packages SET receiver = $1::jsonb, shipment_info = $2::jsonb, updated_at = now() WHERE tracking_number = $3"
	if sql != want {
		t.Fatalf("unexpected statement:\n got %s\nwant %s", sql, want)
	}
	if len(args) != 3 || args[2] != "SCABC1234567" {
		t.Fatalf("unexpected args: %v", args)
	}
	if got, ok := args[0].(domain.Party); !ok || got.Name != "Carol" {
		t.Fatalf("unexpected first arg: %#v", args[0])
	}
}
